package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIncomingOrderRequest entrada para crear un pedido entrante.
type CreateIncomingOrderRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid4"`
	SupplierID     string `json:"supplier_id" validate:"required,uuid4"`
	QuantitySupply int64  `json:"quantity_supply" validate:"required,min=1"`
}

// UpdateIncomingOrderRequest entrada parcial para actualizar un pedido entrante.
type UpdateIncomingOrderRequest struct {
	QuantitySupply *int64 `json:"quantity_supply" validate:"omitempty,min=1"`
}

// IncomingOrderResponse salida de un pedido entrante.
type IncomingOrderResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	SupplierID     string          `json:"supplier_id"`
	QuantitySupply int64           `json:"quantity_supply"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	SupplyDate     time.Time       `json:"supply_date"`
	DateCreated    time.Time       `json:"date_created"`
}

// IncomingOrderListResponse lista paginada de pedidos entrantes.
type IncomingOrderListResponse struct {
	Items      []IncomingOrderResponse `json:"items"`
	Pagination Pagination              `json:"pagination"`
}

// CreateOutgoingOrderRequest entrada para crear un pedido saliente.
type CreateOutgoingOrderRequest struct {
	ProductID     string          `json:"product_id" validate:"required,uuid4"`
	CustomerID    string          `json:"customer_id" validate:"required,uuid4"`
	QuantityOrder int64           `json:"quantity_order" validate:"required,min=1"`
	Discount      decimal.Decimal `json:"discount"`
}

// UpdateOutgoingOrderRequest entrada parcial para actualizar un pedido saliente.
type UpdateOutgoingOrderRequest struct {
	QuantityOrder *int64           `json:"quantity_order" validate:"omitempty,min=1"`
	Discount      *decimal.Decimal `json:"discount"`
}

// OutgoingOrderResponse salida de un pedido saliente.
type OutgoingOrderResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	CustomerID      string          `json:"customer_id"`
	QuantityOrder   int64           `json:"quantity_order"`
	Discount        decimal.Decimal `json:"discount"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	TotalPriceToPay decimal.Decimal `json:"total_price_to_pay"`
	OrderDate       time.Time       `json:"order_date"`
	DateCreated     time.Time       `json:"date_created"`
}

// OutgoingOrderListResponse lista paginada de pedidos salientes.
type OutgoingOrderListResponse struct {
	Items      []OutgoingOrderResponse `json:"items"`
	Pagination Pagination              `json:"pagination"`
}
