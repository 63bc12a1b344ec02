package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// IncomingOrderRepository puerto de persistencia para pedidos entrantes.
type IncomingOrderRepository interface {
	Create(o *entity.IncomingOrder) error
	GetByID(id string) (*entity.IncomingOrder, error)
	List(limit, offset int) ([]*entity.IncomingOrder, error)
	Count() (int, error)
	// ListBySupplier filtra en la consulta, no después de leer (un supplier solo ve lo suyo).
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.IncomingOrder, error)
	CountBySupplier(supplierID string) (int, error)
	Update(o *entity.IncomingOrder) error
	Delete(id string) error
}
