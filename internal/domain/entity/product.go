package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Quantity y Price son espejo del
// registro Stock asociado: después de cada operación confirmada,
// product.Quantity == stock.AvailableQuantity y product.Price == stock.ProductPrice.
type Product struct {
	ID          string
	Name        string
	CategoryID  string
	Quantity    int64
	Price       decimal.Decimal
	DateCreated time.Time
}
