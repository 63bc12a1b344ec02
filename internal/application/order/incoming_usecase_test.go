package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// IDs fijos v4 para que pasen la validación uuid4 de los requests.
const (
	productID      = "7f9c24e5-2f31-4f2b-9d20-1c9a9b3f1a11"
	supplierID     = "b3a1f2c4-5d6e-4f70-8a91-2b3c4d5e6f70"
	supplierUserID = "c4b2e3d5-6f70-4a81-9b02-3c4d5e6f7081"
	otherSupID     = "d5c3f4e6-7081-4b92-a013-4d5e6f708192"
	otherSupUserID = "e6d4a5f7-8192-4ca3-b124-5e6f70819203"
)

type incomingFixture struct {
	uc       *order.IncomingOrderUseCase
	stocks   *stockFake
	products *productFake
	orders   *incomingFake
	tx       *txRunnerFake
	notifier *notifierFake
	supplier *entity.Supplier
	product  *entity.Product
}

func newIncomingFixture(t *testing.T, available int64, price int64) *incomingFixture {
	t.Helper()

	product := &entity.Product{
		ID:       productID,
		Name:     "Tornillos",
		Quantity: available,
		Price:    decimal.NewFromInt(price),
	}
	stock := &entity.Stock{
		ID:                "stock-1",
		ProductID:         productID,
		AvailableQuantity: available,
		ProductPrice:      decimal.NewFromInt(price),
		TotalPrice:        decimal.NewFromInt(available * price),
	}
	supplier := &entity.Supplier{
		ID:        supplierID,
		UserID:    supplierUserID,
		FirstName: "Rosa",
		Email:     "rosa@proveedores.com",
	}
	other := &entity.Supplier{
		ID:        otherSupID,
		UserID:    otherSupUserID,
		FirstName: "Luis",
		Email:     "luis@proveedores.com",
	}

	stocks := newStockFake(stock)
	products := newProductFake(product)
	orders := newIncomingFake()
	outgoings := newOutgoingFake()
	suppliers := newSupplierFake(supplier, other)
	tx := &txRunnerFake{stocks: stocks, products: products, incomings: orders, outgoings: outgoings}
	notifier := &notifierFake{}

	uc := order.NewIncomingOrderUseCase(tx, products, suppliers, orders, notifier, testLogger())
	return &incomingFixture{
		uc: uc, stocks: stocks, products: products, orders: orders,
		tx: tx, notifier: notifier, supplier: supplier, product: product,
	}
}

func admin() domain.Actor {
	return domain.Actor{UserID: "f7e5b6a8-92a3-4db4-9235-6f7081920314", Role: entity.RoleAdmin}
}

func TestIncomingCreate_SumaStockYEspejaProducto(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	resp, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), resp.QuantitySupply)
	assert.True(t, decimal.NewFromInt(200).Equal(resp.TotalPrice))

	stock, _ := fx.stocks.GetByProductID(productID)
	assert.Equal(t, int64(100), stock.AvailableQuantity)
	assert.True(t, decimal.NewFromInt(500).Equal(stock.TotalPrice))

	// El producto espeja cantidad y precio tras el commit.
	assert.Equal(t, int64(100), fx.product.Quantity)
	assert.True(t, decimal.NewFromInt(5).Equal(fx.product.Price))

	msgs := fx.notifier.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "rosa@proveedores.com", msgs[0].To)
	assert.Equal(t, "Pedido entrante creado", msgs[0].Subject)
}

func TestIncomingCreate_SupplierSoloParaSuPerfil(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)
	actor := domain.Actor{UserID: otherSupUserID, Role: entity.RoleSupplier}

	_, err := fx.uc.Create(context.Background(), actor, dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 10,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, fx.tx.runs)
	assert.Empty(t, fx.notifier.messages())
}

func TestIncomingCreate_CustomerNoPuede(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)
	actor := domain.Actor{UserID: otherSupUserID, Role: entity.RoleCustomer}

	_, err := fx.uc.Create(context.Background(), actor, dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 10,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIncomingCreate_ProductoInexistente(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	_, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		SupplierID:     supplierID,
		QuantitySupply: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncomingCreate_SinRegistroDeStock(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)
	require.NoError(t, fx.stocks.DeleteByProductID(productID))

	_, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.notifier.messages())
}

func TestIncomingCreate_CantidadInvalida(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	_, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncomingUpdate_CorrigePorDiferencia(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	newQty := int64(50)
	resp, err := fx.uc.Update(context.Background(), admin(), created.ID, dto.UpdateIncomingOrderRequest{
		QuantitySupply: &newQty,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50), resp.QuantitySupply)
	// El total se recalcula al precio vigente: 50 * 5.
	assert.True(t, decimal.NewFromInt(250).Equal(resp.TotalPrice))

	stock, _ := fx.stocks.GetByProductID(productID)
	assert.Equal(t, int64(110), stock.AvailableQuantity)
	assert.Equal(t, int64(110), fx.product.Quantity)
}

func TestIncomingUpdate_BajaQueDejaStockNegativo(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	// El stock bajó a 10 por otras salidas: una corrección de 40 a 5 dejaría -25.
	stock, _ := fx.stocks.GetByProductID(productID)
	stock.AvailableQuantity = 10

	newQty := int64(5)
	_, err = fx.uc.Update(context.Background(), admin(), created.ID, dto.UpdateIncomingOrderRequest{
		QuantitySupply: &newQty,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Sin Sync: el stock queda como estaba y el pedido conserva su cantidad.
	assert.Equal(t, int64(10), stock.AvailableQuantity)
	got, _ := fx.orders.GetByID(created.ID)
	assert.Equal(t, int64(40), got.QuantitySupply)
}

func TestIncomingUpdate_SupplierSoloLoPropio(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	newQty := int64(10)
	actor := domain.Actor{UserID: otherSupUserID, Role: entity.RoleSupplier}
	_, err = fx.uc.Update(context.Background(), actor, created.ID, dto.UpdateIncomingOrderRequest{
		QuantitySupply: &newQty,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIncomingUpdate_SinCambioDeCantidadNoTocaStock(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)
	runsAfterCreate := fx.tx.runs

	sameQty := int64(40)
	_, err = fx.uc.Update(context.Background(), admin(), created.ID, dto.UpdateIncomingOrderRequest{
		QuantitySupply: &sameQty,
	})
	require.NoError(t, err)
	assert.Equal(t, runsAfterCreate, fx.tx.runs)
}

func TestIncomingDelete_RevierteStock(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(context.Background(), admin(), created.ID))

	stock, _ := fx.stocks.GetByProductID(productID)
	assert.Equal(t, int64(60), stock.AvailableQuantity)
	assert.Equal(t, int64(60), fx.product.Quantity)

	got, _ := fx.orders.GetByID(created.ID)
	assert.Nil(t, got)

	msgs := fx.notifier.messages()
	require.Len(t, msgs, 2) // creación + eliminación
	assert.Equal(t, "Pedido entrante eliminado", msgs[1].Subject)
}

func TestIncomingDelete_SoloAdmin(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	actor := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	err = fx.uc.Delete(context.Background(), actor, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, _ := fx.orders.GetByID(created.ID)
	assert.NotNil(t, got)
}

func TestIncomingDelete_ReversaInsuficiente(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	// El disponible cayó bajo la cantidad del pedido: la reversa dejaría negativo.
	stock, _ := fx.stocks.GetByProductID(productID)
	stock.AvailableQuantity = 30

	err = fx.uc.Delete(context.Background(), admin(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(30), stock.AvailableQuantity)
}

func TestIncomingDelete_SinStockIgualElimina(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	created, err := fx.uc.Create(context.Background(), admin(), dto.CreateIncomingOrderRequest{
		ProductID:      productID,
		SupplierID:     supplierID,
		QuantitySupply: 40,
	})
	require.NoError(t, err)

	require.NoError(t, fx.stocks.DeleteByProductID(productID))

	require.NoError(t, fx.uc.Delete(context.Background(), admin(), created.ID))
	got, _ := fx.orders.GetByID(created.ID)
	assert.Nil(t, got)
}

func TestIncomingList_SupplierSoloVeLoSuyo(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	now := time.Now().UTC()
	fx.orders.byID["o1"] = &entity.IncomingOrder{ID: "o1", ProductID: productID, SupplierID: supplierID, QuantitySupply: 5, SupplyDate: now}
	fx.orders.byID["o2"] = &entity.IncomingOrder{ID: "o2", ProductID: productID, SupplierID: otherSupID, QuantitySupply: 7, SupplyDate: now}

	actor := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	resp, err := fx.uc.List(context.Background(), actor, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "o1", resp.Items[0].ID)
	assert.Equal(t, 1, resp.Pagination.TotalItems)

	all, err := fx.uc.List(context.Background(), admin(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestIncomingGet_ControlDePropiedad(t *testing.T) {
	fx := newIncomingFixture(t, 60, 5)

	fx.orders.byID["o1"] = &entity.IncomingOrder{ID: "o1", ProductID: productID, SupplierID: supplierID, QuantitySupply: 5}

	owner := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	resp, err := fx.uc.Get(context.Background(), owner, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", resp.ID)

	stranger := domain.Actor{UserID: otherSupUserID, Role: entity.RoleSupplier}
	_, err = fx.uc.Get(context.Background(), stranger, "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.uc.Get(context.Background(), admin(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
