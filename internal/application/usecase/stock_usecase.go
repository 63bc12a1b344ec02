package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// StockUseCase consulta y edición administrativa del registro contable.
// Una edición de stock se propaga al producto espejo dentro de la misma tx.
type StockUseCase struct {
	txRunner  CatalogTxRunner
	stockRepo repository.StockRepository
	log       *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner CatalogTxRunner, stockRepo repository.StockRepository, log *logger.Logger) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, stockRepo: stockRepo, log: log}
}

// GetByID obtiene un registro de stock.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*dto.StockResponse, error) {
	s, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(s), nil
}

// GetByProductID obtiene el registro de stock de un producto.
func (uc *StockUseCase) GetByProductID(ctx context.Context, productID string) (*dto.StockResponse, error) {
	s, err := uc.stockRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(s), nil
}

// List lista registros de stock con paginación.
func (uc *StockUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	list, err := uc.stockRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.stockRepo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// Update edita cantidad o precio del stock. El total derivado se recalcula
// y el producto espejo se sincroniza en la misma transacción.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.ProductPrice != nil && in.ProductPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.Stock
	err = uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		s, err := stockRepo.GetForUpdate(current.ProductID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		next := ledger.SnapshotOf(s)
		if in.AvailableQuantity != nil {
			next.AvailableQuantity = *in.AvailableQuantity
		}
		if in.ProductPrice != nil {
			next.ProductPrice = *in.ProductPrice
		}
		if err := ledger.Sync(stockRepo, productRepo, s, next); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("stock_id", id).Str("product_id", updated.ProductID).
		Int64("available_quantity", updated.AvailableQuantity).Msg("stock actualizado")
	return toStockResponse(updated), nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:                s.ID,
		ProductID:         s.ProductID,
		AvailableQuantity: s.AvailableQuantity,
		ProductPrice:      s.ProductPrice,
		TotalPrice:        s.TotalPrice,
		DateCreated:       s.DateCreated,
	}
}
