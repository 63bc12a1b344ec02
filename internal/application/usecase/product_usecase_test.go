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

const categoryID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

type productFixture struct {
	uc         *usecase.ProductUseCase
	products   *productFake
	stocks     *stockFake
	categories *categoryFake
	tx         *catalogTxFake
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	categories := newCategoryFake(&entity.Category{ID: categoryID, Name: "Ferretería"})
	products := newProductFake()
	stocks := newStockFake()
	tx := &catalogTxFake{products: products, stocks: stocks}

	uc := usecase.NewProductUseCase(tx, products, stocks, categories, testLogger())
	return &productFixture{uc: uc, products: products, stocks: stocks, categories: categories, tx: tx}
}

func TestProductCreate_InicializaStock(t *testing.T) {
	fx := newProductFixture(t)

	resp, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: categoryID,
		Quantity:   100,
		Price:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Quantity)

	// El stock nace sembrado con cantidad y precio del producto.
	stock, _ := fx.stocks.GetByProductID(resp.ID)
	require.NotNil(t, stock)
	assert.Equal(t, int64(100), stock.AvailableQuantity)
	assert.True(t, decimal.NewFromInt(10).Equal(stock.ProductPrice))
	assert.True(t, decimal.NewFromInt(1000).Equal(stock.TotalPrice))
	assert.Equal(t, 1, fx.tx.runs)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	fx := newProductFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: "0f1e2d3c-4b5a-4697-8877-665544332211",
		Quantity:   10,
		Price:      decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, fx.tx.runs)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	fx := newProductFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: categoryID,
		Quantity:   10,
		Price:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_PropagaCantidadYPrecioAlStock(t *testing.T) {
	fx := newProductFixture(t)

	created, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: categoryID,
		Quantity:   100,
		Price:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	qty := int64(50)
	price := decimal.NewFromInt(20)
	resp, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Quantity: &qty,
		Price:    &price,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), resp.Quantity)

	stock, _ := fx.stocks.GetByProductID(created.ID)
	assert.Equal(t, int64(50), stock.AvailableQuantity)
	assert.True(t, decimal.NewFromInt(20).Equal(stock.ProductPrice))
	assert.True(t, decimal.NewFromInt(1000).Equal(stock.TotalPrice))
}

func TestProductUpdate_SoloNombreNoTocaStock(t *testing.T) {
	fx := newProductFixture(t)

	created, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: categoryID,
		Quantity:   100,
		Price:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	before, _ := fx.stocks.GetByProductID(created.ID)
	totalBefore := before.TotalPrice

	name := "Tornillos galvanizados"
	resp, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, resp.Name)

	after, _ := fx.stocks.GetByProductID(created.ID)
	assert.Equal(t, int64(100), after.AvailableQuantity)
	assert.True(t, totalBefore.Equal(after.TotalPrice))
}

func TestProductUpdate_Inexistente(t *testing.T) {
	fx := newProductFixture(t)

	name := "x"
	_, err := fx.uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_EliminaProductoYStock(t *testing.T) {
	fx := newProductFixture(t)

	created, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Tornillos",
		CategoryID: categoryID,
		Quantity:   100,
		Price:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(context.Background(), created.ID))

	p, _ := fx.products.GetByID(created.ID)
	assert.Nil(t, p)
	s, _ := fx.stocks.GetByProductID(created.ID)
	assert.Nil(t, s)
}

func TestProductList_Paginado(t *testing.T) {
	fx := newProductFixture(t)

	for _, name := range []string{"Tornillos", "Tuercas", "Clavos"} {
		_, err := fx.uc.Create(context.Background(), dto.CreateProductRequest{
			Name:       name,
			CategoryID: categoryID,
			Quantity:   1,
			Price:      decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	resp, err := fx.uc.List(context.Background(), dto.PageRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}
