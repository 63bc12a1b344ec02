package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// OutgoingOrderUseCase ciclo de vida de pedidos salientes (cliente ← stock).
// Resta de un pool finito: rechaza sobregiros con ErrInsufficientStock y
// dispara alertas de stock bajo al administrador después del commit.
type OutgoingOrderUseCase struct {
	txRunner          TxRunner
	productRepo       repository.ProductRepository
	customerRepo      repository.CustomerRepository
	outgoingRepo      repository.OutgoingOrderRepository
	stockRepo         repository.StockRepository
	userRepo          repository.UserRepository
	notifier          notify.Notifier
	lowStockThreshold int64
	log               *logger.Logger
}

// NewOutgoingOrderUseCase construye el caso de uso.
func NewOutgoingOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	outgoingRepo repository.OutgoingOrderRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	notifier notify.Notifier,
	lowStockThreshold int64,
	log *logger.Logger,
) *OutgoingOrderUseCase {
	return &OutgoingOrderUseCase{
		txRunner:          txRunner,
		productRepo:       productRepo,
		customerRepo:      customerRepo,
		outgoingRepo:      outgoingRepo,
		stockRepo:         stockRepo,
		userRepo:          userRepo,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
		log:               log,
	}
}

func (uc *OutgoingOrderUseCase) allowed(actor domain.Actor) bool {
	return actor.IsAdmin() || actor.Role == entity.RoleCustomer
}

// Create valida, autoriza, concilia y persiste un pedido saliente como una
// unidad atómica. Falla con ErrInsufficientStock cuando la demanda supera el
// disponible, sin tocar estado.
func (uc *OutgoingOrderUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateOutgoingOrderRequest) (*dto.OutgoingOrderResponse, error) {
	if !uc.allowed(actor) {
		uc.log.Warn().Str("user_id", actor.UserID).Msg("intento no autorizado de crear pedido saliente")
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := validDiscount(in.Discount); err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForCustomer(customer) {
		uc.log.Warn().Str("customer_id", in.CustomerID).Str("user_id", actor.UserID).
			Msg("customer solo puede crear pedidos propios")
		return nil, domain.ErrForbidden
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	o := &entity.OutgoingOrder{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		CustomerID:    in.CustomerID,
		QuantityOrder: in.QuantityOrder,
		Discount:      in.Discount,
		OrderDate:     now,
		DateCreated:   now,
	}

	var remaining int64
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		_ repository.IncomingOrderRepository,
		outgoingRepo repository.OutgoingOrderRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		next, pricing, err := ledger.ApplyOutgoingCreate(ledger.SnapshotOf(stock), in.QuantityOrder, in.Discount)
		if err != nil {
			return err
		}
		o.TotalPrice = pricing.TotalPrice
		o.TotalPriceToPay = pricing.TotalPriceToPay
		remaining = next.AvailableQuantity
		if err := outgoingRepo.Create(o); err != nil {
			return err
		}
		return ledger.Sync(stockRepo, productRepo, stock, next)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Enqueue(notify.OutgoingOrderCreated(customer, product, o))
	uc.checkLowStock(o.ProductID, remaining)
	uc.log.Info().Str("order_id", o.ID).Str("product_id", o.ProductID).Msg("pedido saliente creado")
	return toOutgoingResponse(o), nil
}

// List retorna pedidos salientes paginados. Un customer solo ve los suyos.
func (uc *OutgoingOrderUseCase) List(ctx context.Context, actor domain.Actor, page dto.PageRequest) (*dto.OutgoingOrderListResponse, error) {
	if !uc.allowed(actor) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	var (
		orders []*entity.OutgoingOrder
		total  int
		err    error
	)
	if actor.IsAdmin() {
		orders, err = uc.outgoingRepo.List(page.PerPage, page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = uc.outgoingRepo.Count()
	} else {
		customer, cerr := uc.customerRepo.GetByUserID(actor.UserID)
		if cerr != nil {
			return nil, cerr
		}
		if customer == nil {
			return nil, domain.ErrForbidden
		}
		orders, err = uc.outgoingRepo.ListByCustomer(customer.ID, page.PerPage, page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = uc.outgoingRepo.CountByCustomer(customer.ID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.OutgoingOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOutgoingResponse(o))
	}
	return &dto.OutgoingOrderListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// Get retorna un pedido saliente por ID con control de propiedad.
func (uc *OutgoingOrderUseCase) Get(ctx context.Context, actor domain.Actor, orderID string) (*dto.OutgoingOrderResponse, error) {
	if !uc.allowed(actor) {
		return nil, domain.ErrForbidden
	}
	o, err := uc.outgoingRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() {
		customer, err := uc.customerRepo.GetByUserID(actor.UserID)
		if err != nil {
			return nil, err
		}
		if customer == nil || o.CustomerID != customer.ID {
			return nil, domain.ErrForbidden
		}
	}
	return toOutgoingResponse(o), nil
}

// Update modifica un pedido saliente (solo admin). Si cambia la cantidad, la
// suficiencia se revalida solo sobre la demanda incremental; si solo cambia el
// descuento se recalcula total_price_to_pay sin tocar stock.
func (uc *OutgoingOrderUseCase) Update(ctx context.Context, actor domain.Actor, orderID string, in dto.UpdateOutgoingOrderRequest) (*dto.OutgoingOrderResponse, error) {
	if !actor.IsAdmin() {
		uc.log.Warn().Str("order_id", orderID).Str("user_id", actor.UserID).
			Msg("intento no-admin de actualizar pedido saliente")
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Discount != nil {
		if err := validDiscount(*in.Discount); err != nil {
			return nil, err
		}
	}

	o, err := uc.outgoingRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	discount := o.Discount
	if in.Discount != nil {
		discount = *in.Discount
	}

	switch {
	case in.QuantityOrder != nil && *in.QuantityOrder != o.QuantityOrder:
		oldQuantity := o.QuantityOrder
		newQuantity := *in.QuantityOrder
		var remaining int64
		err = uc.txRunner.Run(ctx, func(
			stockRepo repository.StockRepository,
			productRepo repository.ProductRepository,
			_ repository.IncomingOrderRepository,
			outgoingRepo repository.OutgoingOrderRepository,
		) error {
			stock, err := stockRepo.GetForUpdate(o.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrNotFound
			}
			next, pricing, err := ledger.ApplyOutgoingUpdate(ledger.SnapshotOf(stock), oldQuantity, newQuantity, discount)
			if err != nil {
				return err
			}
			o.QuantityOrder = newQuantity
			o.Discount = discount
			o.TotalPrice = pricing.TotalPrice
			o.TotalPriceToPay = pricing.TotalPriceToPay
			remaining = next.AvailableQuantity
			if err := outgoingRepo.Update(o); err != nil {
				return err
			}
			return ledger.Sync(stockRepo, productRepo, stock, next)
		})
		if err != nil {
			return nil, err
		}
		uc.checkLowStock(o.ProductID, remaining)

	case in.Discount != nil:
		// Solo cambió el descuento: se reprecia sobre el total existente.
		o.Discount = discount
		o.TotalPriceToPay = ledger.Reprice(o.TotalPrice, discount)
		if err := uc.outgoingRepo.Update(o); err != nil {
			return nil, err
		}
	}

	customer, cerr := uc.customerRepo.GetByID(o.CustomerID)
	product, perr := uc.productRepo.GetByID(o.ProductID)
	if cerr == nil && perr == nil && customer != nil && product != nil {
		uc.notifier.Enqueue(notify.OutgoingOrderUpdated(customer, product, o))
	}
	uc.log.Info().Str("order_id", o.ID).Msg("pedido saliente actualizado")
	return toOutgoingResponse(o), nil
}

// Delete elimina un pedido saliente (solo admin) y devuelve su cantidad al
// stock de forma incondicional.
func (uc *OutgoingOrderUseCase) Delete(ctx context.Context, actor domain.Actor, orderID string) error {
	if !actor.IsAdmin() {
		uc.log.Warn().Str("order_id", orderID).Str("user_id", actor.UserID).
			Msg("intento no-admin de eliminar pedido saliente")
		return domain.ErrForbidden
	}

	o, err := uc.outgoingRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		_ repository.IncomingOrderRepository,
		outgoingRepo repository.OutgoingOrderRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(o.ProductID)
		if err != nil {
			return err
		}
		if err := outgoingRepo.Delete(o.ID); err != nil {
			return err
		}
		if stock == nil {
			uc.log.Warn().Str("order_id", o.ID).Str("product_id", o.ProductID).
				Msg("sin registro de stock, se omite la devolución")
			return nil
		}
		next := ledger.ApplyOutgoingDelete(ledger.SnapshotOf(stock), o.QuantityOrder)
		return ledger.Sync(stockRepo, productRepo, stock, next)
	})
	if err != nil {
		return err
	}

	customer, cerr := uc.customerRepo.GetByID(o.CustomerID)
	product, perr := uc.productRepo.GetByID(o.ProductID)
	if cerr == nil && perr == nil && customer != nil && product != nil {
		uc.notifier.Enqueue(notify.OutgoingOrderDeleted(customer, product, o))
	}
	uc.log.Info().Str("order_id", orderID).Msg("pedido saliente eliminado")
	return nil
}

// checkLowStock encola una alerta al primer admin cuando el disponible cayó
// bajo el umbral configurado. Cualquier fallo aquí se registra y se descarta.
func (uc *OutgoingOrderUseCase) checkLowStock(productID string, remaining int64) {
	if remaining >= uc.lowStockThreshold {
		return
	}
	admin, err := uc.userRepo.FirstByRole(entity.RoleAdmin)
	if err != nil || admin == nil {
		uc.log.Warn().Str("product_id", productID).Msg("sin admin para alerta de stock bajo")
		return
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return
	}
	stock, err := uc.stockRepo.GetByProductID(productID)
	if err != nil || stock == nil {
		return
	}
	uc.notifier.Enqueue(notify.LowStockAlert(admin, product, stock))
	uc.log.Info().Str("product_id", productID).Int64("remaining", remaining).Msg("alerta de stock bajo encolada")
}

func validDiscount(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toOutgoingResponse(o *entity.OutgoingOrder) *dto.OutgoingOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OutgoingOrderResponse{
		ID:              o.ID,
		ProductID:       o.ProductID,
		CustomerID:      o.CustomerID,
		QuantityOrder:   o.QuantityOrder,
		Discount:        o.Discount,
		TotalPrice:      o.TotalPrice,
		TotalPriceToPay: o.TotalPriceToPay,
		OrderDate:       o.OrderDate,
		DateCreated:     o.DateCreated,
	}
}
