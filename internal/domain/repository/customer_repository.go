package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para perfiles de cliente.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByUserID(userID string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Count() (int, error)
	Update(c *entity.Customer) error
	Delete(id string) error
}
