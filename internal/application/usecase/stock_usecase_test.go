package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type stockFixture struct {
	uc       *usecase.StockUseCase
	stocks   *stockFake
	products *productFake
	product  *entity.Product
	stock    *entity.Stock
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()

	product := &entity.Product{
		ID:       "6d5c4b3a-2918-4f0e-9d8c-7b6a59483726",
		Name:     "Tornillos",
		Quantity: 100,
		Price:    decimal.NewFromInt(10),
	}
	stock := &entity.Stock{
		ID:                "stock-1",
		ProductID:         product.ID,
		AvailableQuantity: 100,
		ProductPrice:      decimal.NewFromInt(10),
		TotalPrice:        decimal.NewFromInt(1000),
	}

	products := newProductFake(product)
	stocks := newStockFake(stock)
	tx := &catalogTxFake{products: products, stocks: stocks}

	uc := usecase.NewStockUseCase(tx, stocks, testLogger())
	return &stockFixture{uc: uc, stocks: stocks, products: products, product: product, stock: stock}
}

func TestStockUpdate_RecalculaTotalYEspejaProducto(t *testing.T) {
	fx := newStockFixture(t)

	qty := int64(80)
	price := decimal.NewFromInt(12)
	resp, err := fx.uc.Update(context.Background(), "stock-1", dto.UpdateStockRequest{
		AvailableQuantity: &qty,
		ProductPrice:      &price,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(80), resp.AvailableQuantity)
	assert.True(t, decimal.NewFromInt(12).Equal(resp.ProductPrice))
	// El total nunca se fija a mano: siempre cantidad * precio.
	assert.True(t, decimal.NewFromInt(960).Equal(resp.TotalPrice))

	assert.Equal(t, int64(80), fx.product.Quantity)
	assert.True(t, decimal.NewFromInt(12).Equal(fx.product.Price))
}

func TestStockUpdate_SoloCantidad(t *testing.T) {
	fx := newStockFixture(t)

	qty := int64(40)
	resp, err := fx.uc.Update(context.Background(), "stock-1", dto.UpdateStockRequest{
		AvailableQuantity: &qty,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), resp.AvailableQuantity)
	assert.True(t, decimal.NewFromInt(10).Equal(resp.ProductPrice))
	assert.True(t, decimal.NewFromInt(400).Equal(resp.TotalPrice))
}

func TestStockUpdate_PrecioNegativo(t *testing.T) {
	fx := newStockFixture(t)

	price := decimal.NewFromInt(-5)
	_, err := fx.uc.Update(context.Background(), "stock-1", dto.UpdateStockRequest{
		ProductPrice: &price,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(100), fx.stock.AvailableQuantity)
}

func TestStockUpdate_Inexistente(t *testing.T) {
	fx := newStockFixture(t)

	qty := int64(1)
	_, err := fx.uc.Update(context.Background(), "no-existe", dto.UpdateStockRequest{
		AvailableQuantity: &qty,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockGet(t *testing.T) {
	fx := newStockFixture(t)

	byID, err := fx.uc.GetByID(context.Background(), "stock-1")
	require.NoError(t, err)
	assert.Equal(t, fx.product.ID, byID.ProductID)

	byProduct, err := fx.uc.GetByProductID(context.Background(), fx.product.ID)
	require.NoError(t, err)
	assert.Equal(t, "stock-1", byProduct.ID)

	_, err = fx.uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockList(t *testing.T) {
	fx := newStockFixture(t)

	resp, err := fx.uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Pagination.TotalItems)
}
