package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función con repos de producto y stock atados a
// una transacción. Product y Stock nacen y mueren juntos; este runner
// garantiza que lo hagan de forma atómica.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
