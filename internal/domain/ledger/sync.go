package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockWriter persiste el registro de stock ya conciliado.
type StockWriter interface {
	Update(s *entity.Stock) error
}

// ProductMirror espeja quantity/price del stock en el producto dueño.
type ProductMirror interface {
	SyncFromStock(productID string, quantity int64, price decimal.Decimal) error
}

// Sync aplica un snapshot conciliado sobre el registro de stock y espeja el
// resultado en el producto. Es el único punto de escritura del par
// Stock/Product: toda operación del motor termina aquí, de modo que las dos
// vistas del mismo hecho no puedan divergir.
func Sync(stocks StockWriter, products ProductMirror, stock *entity.Stock, next Snapshot) error {
	stock.AvailableQuantity = next.AvailableQuantity
	stock.ProductPrice = next.ProductPrice
	stock.TotalPrice = next.TotalPrice()
	if err := stocks.Update(stock); err != nil {
		return err
	}
	return products.SyncFromStock(stock.ProductID, next.AvailableQuantity, next.ProductPrice)
}

// SnapshotOf toma el snapshot confirmado de un registro de stock.
func SnapshotOf(s *entity.Stock) Snapshot {
	return Snapshot{AvailableQuantity: s.AvailableQuantity, ProductPrice: s.ProductPrice}
}
