package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomingOrder es un pedido de proveedor: un evento que suma stock disponible.
// TotalPrice = QuantitySupply * precio del producto al momento de la operación.
type IncomingOrder struct {
	ID             string
	ProductID      string
	SupplierID     string
	QuantitySupply int64
	TotalPrice     decimal.Decimal
	SupplyDate     time.Time // fijado en la creación, inmutable
	DateCreated    time.Time
}
