package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OutgoingOrderRepository puerto de persistencia para pedidos salientes.
type OutgoingOrderRepository interface {
	Create(o *entity.OutgoingOrder) error
	GetByID(id string) (*entity.OutgoingOrder, error)
	List(limit, offset int) ([]*entity.OutgoingOrder, error)
	Count() (int, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.OutgoingOrder, error)
	CountByCustomer(customerID string) (int, error)
	Update(o *entity.OutgoingOrder) error
	Delete(id string) error
}
