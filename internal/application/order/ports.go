package order

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn retorna nil, Rollback si no:
// toda operación de pedido es de todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		incomingRepo repository.IncomingOrderRepository,
		outgoingRepo repository.OutgoingOrderRepository,
	) error) error
}
