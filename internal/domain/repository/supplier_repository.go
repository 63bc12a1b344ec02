package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para perfiles de proveedor.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByUserID(userID string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Count() (int, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}
