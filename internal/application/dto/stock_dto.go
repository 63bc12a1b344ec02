package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateStockRequest entrada para editar un registro de stock (admin).
// Los cambios se propagan al producto asociado; total_price nunca se fija a mano.
type UpdateStockRequest struct {
	AvailableQuantity *int64           `json:"available_quantity" validate:"omitempty,min=0"`
	ProductPrice      *decimal.Decimal `json:"product_price"`
}

// StockResponse salida de un registro de stock.
type StockResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	AvailableQuantity int64           `json:"available_quantity"`
	ProductPrice      decimal.Decimal `json:"product_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	DateCreated       time.Time       `json:"date_created"`
}

// StockListResponse lista paginada de registros de stock.
type StockListResponse struct {
	Items      []StockResponse `json:"items"`
	Pagination Pagination      `json:"pagination"`
}
