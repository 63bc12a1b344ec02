package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutgoingOrder es un pedido de cliente: un evento que resta stock disponible.
// TotalPriceToPay = TotalPrice * (1 - Discount/100).
type OutgoingOrder struct {
	ID              string
	ProductID       string
	CustomerID      string
	QuantityOrder   int64
	Discount        decimal.Decimal // porcentaje 0–100, default 0
	TotalPrice      decimal.Decimal
	TotalPriceToPay decimal.Decimal
	OrderDate       time.Time // fijado en la creación, inmutable
	DateCreated     time.Time
}
