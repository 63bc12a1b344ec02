package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// IncomingOrderUseCase ciclo de vida de pedidos entrantes (proveedor → stock).
// Cada mutación corre en una transacción con bloqueo de fila sobre el stock
// (SELECT FOR UPDATE) y concilia vía el motor de ledger.
type IncomingOrderUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	incomingRepo repository.IncomingOrderRepository
	notifier     notify.Notifier
	log          *logger.Logger
}

// NewIncomingOrderUseCase construye el caso de uso.
func NewIncomingOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	incomingRepo repository.IncomingOrderRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *IncomingOrderUseCase {
	return &IncomingOrderUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		incomingRepo: incomingRepo,
		notifier:     notifier,
		log:          log,
	}
}

func (uc *IncomingOrderUseCase) allowed(actor domain.Actor) bool {
	return actor.IsAdmin() || actor.Role == entity.RoleSupplier
}

// Create valida, autoriza, concilia y persiste un pedido entrante como una
// unidad atómica. La recepción de mercancía nunca se rechaza por cantidad.
// La notificación al proveedor se encola después del commit, mejor esfuerzo.
func (uc *IncomingOrderUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateIncomingOrderRequest) (*dto.IncomingOrderResponse, error) {
	if !uc.allowed(actor) {
		uc.log.Warn().Str("user_id", actor.UserID).Msg("intento no autorizado de crear pedido entrante")
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForSupplier(supplier) {
		uc.log.Warn().Str("supplier_id", in.SupplierID).Str("user_id", actor.UserID).
			Msg("supplier solo puede crear pedidos propios")
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
	o := &entity.IncomingOrder{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		SupplierID:     in.SupplierID,
		QuantitySupply: in.QuantitySupply,
		SupplyDate:     now,
		DateCreated:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		incomingRepo repository.IncomingOrderRepository,
		_ repository.OutgoingOrderRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound // el producto no tiene registro de stock
		}
		next, orderTotal := ledger.ApplyIncomingCreate(ledger.SnapshotOf(stock), in.QuantitySupply)
		o.TotalPrice = orderTotal
		if err := incomingRepo.Create(o); err != nil {
			return err
		}
		return ledger.Sync(stockRepo, productRepo, stock, next)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Enqueue(notify.IncomingOrderCreated(supplier, product, o))
	uc.log.Info().Str("order_id", o.ID).Str("product_id", o.ProductID).Msg("pedido entrante creado")
	return toIncomingResponse(o), nil
}

// List retorna pedidos entrantes paginados. Un supplier solo ve los suyos;
// el filtro va en la consulta, no después de leer.
func (uc *IncomingOrderUseCase) List(ctx context.Context, actor domain.Actor, page dto.PageRequest) (*dto.IncomingOrderListResponse, error) {
	if !uc.allowed(actor) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	var (
		orders []*entity.IncomingOrder
		total  int
		err    error
	)
	if actor.IsAdmin() {
		orders, err = uc.incomingRepo.List(page.PerPage, page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = uc.incomingRepo.Count()
	} else {
		supplier, serr := uc.supplierRepo.GetByUserID(actor.UserID)
		if serr != nil {
			return nil, serr
		}
		if supplier == nil {
			return nil, domain.ErrForbidden
		}
		orders, err = uc.incomingRepo.ListBySupplier(supplier.ID, page.PerPage, page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = uc.incomingRepo.CountBySupplier(supplier.ID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.IncomingOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toIncomingResponse(o))
	}
	return &dto.IncomingOrderListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// Get retorna un pedido entrante por ID con control de propiedad.
func (uc *IncomingOrderUseCase) Get(ctx context.Context, actor domain.Actor, orderID string) (*dto.IncomingOrderResponse, error) {
	if !uc.allowed(actor) {
		return nil, domain.ErrForbidden
	}
	o, err := uc.incomingRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() {
		supplier, err := uc.supplierRepo.GetByUserID(actor.UserID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || o.SupplierID != supplier.ID {
			return nil, domain.ErrForbidden
		}
	}
	return toIncomingResponse(o), nil
}

// Update ajusta la cantidad de un pedido entrante. El stock se corrige por la
// diferencia y el total del pedido se recalcula al precio vigente del producto,
// no al congelado en la creación.
func (uc *IncomingOrderUseCase) Update(ctx context.Context, actor domain.Actor, orderID string, in dto.UpdateIncomingOrderRequest) (*dto.IncomingOrderResponse, error) {
	if !uc.allowed(actor) {
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	o, err := uc.incomingRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	supplier, err := uc.supplierRepo.GetByID(o.SupplierID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		owned, oerr := uc.supplierRepo.GetByUserID(actor.UserID)
		if oerr != nil {
			return nil, oerr
		}
		if owned == nil || o.SupplierID != owned.ID {
			return nil, domain.ErrForbidden
		}
	}

	if in.QuantitySupply != nil && *in.QuantitySupply != o.QuantitySupply {
		oldQuantity := o.QuantitySupply
		newQuantity := *in.QuantitySupply
		err = uc.txRunner.Run(ctx, func(
			stockRepo repository.StockRepository,
			productRepo repository.ProductRepository,
			incomingRepo repository.IncomingOrderRepository,
			_ repository.OutgoingOrderRepository,
		) error {
			stock, err := stockRepo.GetForUpdate(o.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrNotFound
			}
			next, orderTotal, err := ledger.ApplyIncomingUpdate(ledger.SnapshotOf(stock), oldQuantity, newQuantity)
			if err != nil {
				return err
			}
			o.QuantitySupply = newQuantity
			o.TotalPrice = orderTotal
			if err := incomingRepo.Update(o); err != nil {
				return err
			}
			return ledger.Sync(stockRepo, productRepo, stock, next)
		})
		if err != nil {
			return nil, err
		}
	}

	if product, perr := uc.productRepo.GetByID(o.ProductID); perr == nil && product != nil && supplier != nil {
		uc.notifier.Enqueue(notify.IncomingOrderUpdated(supplier, product, o))
	}
	uc.log.Info().Str("order_id", o.ID).Msg("pedido entrante actualizado")
	return toIncomingResponse(o), nil
}

// Delete elimina un pedido entrante (solo admin) y revierte su efecto sobre el
// stock. Si el registro de stock ya no existe, la reversa se omite y se deja
// constancia en el log; el borrado del pedido igual procede.
func (uc *IncomingOrderUseCase) Delete(ctx context.Context, actor domain.Actor, orderID string) error {
	if !actor.IsAdmin() {
		uc.log.Warn().Str("order_id", orderID).Str("user_id", actor.UserID).
			Msg("intento no-admin de eliminar pedido entrante")
		return domain.ErrForbidden
	}

	o, err := uc.incomingRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		incomingRepo repository.IncomingOrderRepository,
		_ repository.OutgoingOrderRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(o.ProductID)
		if err != nil {
			return err
		}
		if err := incomingRepo.Delete(o.ID); err != nil {
			return err
		}
		if stock == nil {
			uc.log.Warn().Str("order_id", o.ID).Str("product_id", o.ProductID).
				Msg("sin registro de stock, se omite la reversa")
			return nil
		}
		next, err := ledger.ApplyIncomingDelete(ledger.SnapshotOf(stock), o.QuantitySupply)
		if err != nil {
			return err
		}
		return ledger.Sync(stockRepo, productRepo, stock, next)
	})
	if err != nil {
		return err
	}

	supplier, serr := uc.supplierRepo.GetByID(o.SupplierID)
	product, perr := uc.productRepo.GetByID(o.ProductID)
	if serr == nil && perr == nil && supplier != nil && product != nil {
		uc.notifier.Enqueue(notify.IncomingOrderDeleted(supplier, product, o.QuantitySupply))
	}
	uc.log.Info().Str("order_id", orderID).Msg("pedido entrante eliminado")
	return nil
}

func toIncomingResponse(o *entity.IncomingOrder) *dto.IncomingOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.IncomingOrderResponse{
		ID:             o.ID,
		ProductID:      o.ProductID,
		SupplierID:     o.SupplierID,
		QuantitySupply: o.QuantitySupply,
		TotalPrice:     o.TotalPrice,
		SupplyDate:     o.SupplyDate,
		DateCreated:    o.DateCreated,
	}
}
