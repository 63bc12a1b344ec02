package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es el registro contable de un producto (1:1 con Product).
// TotalPrice es siempre AvailableQuantity * ProductPrice; nunca se fija de forma independiente.
type Stock struct {
	ID                string
	ProductID         string // único
	AvailableQuantity int64
	ProductPrice      decimal.Decimal
	TotalPrice        decimal.Decimal
	DateCreated       time.Time
}
