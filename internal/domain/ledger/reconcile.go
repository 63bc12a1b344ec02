package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Snapshot es el estado confirmado del stock de un producto sobre el que se
// calcula una operación. El motor no toca persistencia: recibe el snapshot,
// devuelve el nuevo estado o rechaza la operación.
type Snapshot struct {
	AvailableQuantity int64
	ProductPrice      decimal.Decimal
}

// TotalPrice deriva el valor agregado del stock. Es el único punto donde se
// calcula AvailableQuantity * ProductPrice; Stock.TotalPrice y Product.Quantity
// se sincronizan siempre desde aquí.
func (s Snapshot) TotalPrice() decimal.Decimal {
	return decimal.NewFromInt(s.AvailableQuantity).Mul(s.ProductPrice)
}

// Pricing son los precios calculados para un pedido de salida.
type Pricing struct {
	TotalPrice      decimal.Decimal
	TotalPriceToPay decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Reprice aplica un descuento porcentual sobre un total ya calculado.
// Se usa también cuando un update de pedido solo cambia el descuento.
func Reprice(totalPrice, discountPct decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(oneHundred))
	return totalPrice.Mul(factor)
}

// ApplyIncomingCreate suma QuantitySupply al stock. La recepción de mercancía
// nunca se rechaza por cantidad (quantitySupply >= 1 lo garantiza la validación).
// Retorna el nuevo snapshot y el total del pedido al precio vigente.
func ApplyIncomingCreate(s Snapshot, quantitySupply int64) (Snapshot, decimal.Decimal) {
	next := Snapshot{
		AvailableQuantity: s.AvailableQuantity + quantitySupply,
		ProductPrice:      s.ProductPrice,
	}
	orderTotal := decimal.NewFromInt(quantitySupply).Mul(s.ProductPrice)
	return next, orderTotal
}

// ApplyIncomingUpdate ajusta el stock por la diferencia entre la cantidad vieja
// y la nueva de un pedido entrante. Una corrección a la baja puede dejar delta
// negativo; si el resultado baja de cero se rechaza con ErrInsufficientStock.
// Retorna además el total del pedido recalculado al precio vigente.
func ApplyIncomingUpdate(s Snapshot, oldQuantity, newQuantity int64) (Snapshot, decimal.Decimal, error) {
	delta := newQuantity - oldQuantity
	if s.AvailableQuantity+delta < 0 {
		return Snapshot{}, decimal.Decimal{}, domain.ErrInsufficientStock
	}
	next := Snapshot{
		AvailableQuantity: s.AvailableQuantity + delta,
		ProductPrice:      s.ProductPrice,
	}
	orderTotal := decimal.NewFromInt(newQuantity).Mul(s.ProductPrice)
	return next, orderTotal, nil
}

// ApplyIncomingDelete revierte una creación: resta la cantidad original del pedido.
// Si la reversa dejaría el stock negativo se rechaza con ErrInsufficientStock.
func ApplyIncomingDelete(s Snapshot, quantity int64) (Snapshot, error) {
	if s.AvailableQuantity-quantity < 0 {
		return Snapshot{}, domain.ErrInsufficientStock
	}
	return Snapshot{
		AvailableQuantity: s.AvailableQuantity - quantity,
		ProductPrice:      s.ProductPrice,
	}, nil
}

// ApplyOutgoingCreate resta QuantityOrder del stock. Rechaza con
// ErrInsufficientStock cuando la demanda supera la cantidad disponible.
func ApplyOutgoingCreate(s Snapshot, quantityOrder int64, discountPct decimal.Decimal) (Snapshot, Pricing, error) {
	if quantityOrder > s.AvailableQuantity {
		return Snapshot{}, Pricing{}, domain.ErrInsufficientStock
	}
	next := Snapshot{
		AvailableQuantity: s.AvailableQuantity - quantityOrder,
		ProductPrice:      s.ProductPrice,
	}
	total := decimal.NewFromInt(quantityOrder).Mul(s.ProductPrice)
	return next, Pricing{TotalPrice: total, TotalPriceToPay: Reprice(total, discountPct)}, nil
}

// ApplyOutgoingUpdate valida la suficiencia solo sobre la demanda incremental:
// delta = newQuantity - oldQuantity. Un delta negativo (el pedido se achicó)
// devuelve stock y nunca falla.
func ApplyOutgoingUpdate(s Snapshot, oldQuantity, newQuantity int64, discountPct decimal.Decimal) (Snapshot, Pricing, error) {
	delta := newQuantity - oldQuantity
	if delta > 0 && delta > s.AvailableQuantity {
		return Snapshot{}, Pricing{}, domain.ErrInsufficientStock
	}
	next := Snapshot{
		AvailableQuantity: s.AvailableQuantity - delta,
		ProductPrice:      s.ProductPrice,
	}
	total := decimal.NewFromInt(newQuantity).Mul(s.ProductPrice)
	return next, Pricing{TotalPrice: total, TotalPriceToPay: Reprice(total, discountPct)}, nil
}

// ApplyOutgoingDelete devuelve la cantidad del pedido al stock. La devolución
// no tiene cota superior en este modelo, por lo que nunca falla.
func ApplyOutgoingDelete(s Snapshot, quantity int64) Snapshot {
	return Snapshot{
		AvailableQuantity: s.AvailableQuantity + quantity,
		ProductPrice:      s.ProductPrice,
	}
}
