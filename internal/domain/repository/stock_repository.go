package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRepository puerto de persistencia para el registro contable de stock.
type StockRepository interface {
	Create(s *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	GetByProductID(productID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la tx.
	GetForUpdate(productID string) (*entity.Stock, error)
	List(limit, offset int) ([]*entity.Stock, error)
	Count() (int, error)
	Update(s *entity.Stock) error
	DeleteByProductID(productID string) error
}
