package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
	Update(p *entity.Product) error
	// SyncFromStock espeja quantity/price desde el registro de stock (motor de conciliación).
	SyncFromStock(productID string, quantity int64, price decimal.Decimal) error
	Delete(id string) error
}
