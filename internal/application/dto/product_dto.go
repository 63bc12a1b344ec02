package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (inicializa su stock).
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	CategoryID string          `json:"category_id" validate:"required,uuid4"`
	Quantity   int64           `json:"quantity" validate:"min=0"`
	Price      decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. Cambios de quantity
// o price se propagan al registro de stock.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=100"`
	CategoryID *string          `json:"category_id" validate:"omitempty,uuid4"`
	Quantity   *int64           `json:"quantity" validate:"omitempty,min=0"`
	Price      *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	DateCreated time.Time       `json:"date_created"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}
