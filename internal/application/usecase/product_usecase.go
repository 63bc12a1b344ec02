package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ProductUseCase CRUD de productos. Crear un producto inicializa su registro
// de stock en la misma transacción; editar quantity/price se propaga al stock.
type ProductUseCase struct {
	txRunner     CatalogTxRunner
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	categoryRepo repository.CategoryRepository
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner CatalogTxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	categoryRepo repository.CategoryRepository,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

// Create crea producto y stock como una unidad. El stock nace sembrado con la
// cantidad y el precio iniciales del producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		DateCreated: now,
	}
	seed := ledger.Snapshot{AvailableQuantity: in.Quantity, ProductPrice: in.Price}
	stock := &entity.Stock{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		AvailableQuantity: seed.AvailableQuantity,
		ProductPrice:      seed.ProductPrice,
		TotalPrice:        seed.TotalPrice(),
		DateCreated:       now,
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.Create(stock)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado con stock inicial")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// Update actualiza un producto. Cambios de quantity o price se propagan al
// registro de stock dentro de la misma transacción, con la fila bloqueada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	touchesStock := in.Quantity != nil || in.Price != nil
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := productRepo.Update(product); err != nil {
			return err
		}
		if !touchesStock {
			return nil
		}
		stock, err := stockRepo.GetForUpdate(product.ID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		next := ledger.Snapshot{AvailableQuantity: product.Quantity, ProductPrice: product.Price}
		return ledger.Sync(stockRepo, productRepo, stock, next)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", id).Msg("producto actualizado")
	return toProductResponse(product), nil
}

// Delete elimina producto y stock en la misma transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := stockRepo.DeleteByProductID(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado con su stock")
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Quantity:    p.Quantity,
		Price:       p.Price,
		DateCreated: p.DateCreated,
	}
}
