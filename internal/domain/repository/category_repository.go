package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	Count() (int, error)
	Update(c *entity.Category) error
	// CountProducts cuenta los productos que referencian la categoría (regla de borrado).
	CountProducts(categoryID string) (int, error)
	Delete(id string) error
}
