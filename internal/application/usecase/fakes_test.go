package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Dobles en memoria para los casos de uso de catálogo.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type productFake struct {
	byID map[string]*entity.Product
}

func newProductFake(products ...*entity.Product) *productFake {
	f := &productFake{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *productFake) Create(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *productFake) GetByID(id string) (*entity.Product, error) { return f.byID[id], nil }

func (f *productFake) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *productFake) Count() (int, error) { return len(f.byID), nil }

func (f *productFake) Update(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *productFake) SyncFromStock(productID string, quantity int64, price decimal.Decimal) error {
	if p, ok := f.byID[productID]; ok {
		p.Quantity = quantity
		p.Price = price
	}
	return nil
}

func (f *productFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type stockFake struct {
	byProduct map[string]*entity.Stock
}

func newStockFake(stocks ...*entity.Stock) *stockFake {
	f := &stockFake{byProduct: make(map[string]*entity.Stock)}
	for _, s := range stocks {
		f.byProduct[s.ProductID] = s
	}
	return f
}

func (f *stockFake) Create(s *entity.Stock) error {
	f.byProduct[s.ProductID] = s
	return nil
}

func (f *stockFake) GetByID(id string) (*entity.Stock, error) {
	for _, s := range f.byProduct {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *stockFake) GetByProductID(productID string) (*entity.Stock, error) {
	return f.byProduct[productID], nil
}

func (f *stockFake) GetForUpdate(productID string) (*entity.Stock, error) {
	return f.byProduct[productID], nil
}

func (f *stockFake) List(limit, offset int) ([]*entity.Stock, error) {
	out := make([]*entity.Stock, 0, len(f.byProduct))
	for _, s := range f.byProduct {
		out = append(out, s)
	}
	return out, nil
}

func (f *stockFake) Count() (int, error) { return len(f.byProduct), nil }

func (f *stockFake) Update(s *entity.Stock) error {
	f.byProduct[s.ProductID] = s
	return nil
}

func (f *stockFake) DeleteByProductID(productID string) error {
	delete(f.byProduct, productID)
	return nil
}

type categoryFake struct {
	byID          map[string]*entity.Category
	productCounts map[string]int
}

func newCategoryFake(categories ...*entity.Category) *categoryFake {
	f := &categoryFake{
		byID:          make(map[string]*entity.Category),
		productCounts: make(map[string]int),
	}
	for _, c := range categories {
		f.byID[c.ID] = c
	}
	return f
}

func (f *categoryFake) Create(c *entity.Category) error {
	for _, existing := range f.byID {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	f.byID[c.ID] = c
	return nil
}

func (f *categoryFake) GetByID(id string) (*entity.Category, error) { return f.byID[id], nil }

func (f *categoryFake) List(limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *categoryFake) Count() (int, error) { return len(f.byID), nil }

func (f *categoryFake) Update(c *entity.Category) error {
	f.byID[c.ID] = c
	return nil
}

func (f *categoryFake) CountProducts(categoryID string) (int, error) {
	return f.productCounts[categoryID], nil
}

func (f *categoryFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type supplierFake struct {
	byID map[string]*entity.Supplier
}

func newSupplierFake(suppliers ...*entity.Supplier) *supplierFake {
	f := &supplierFake{byID: make(map[string]*entity.Supplier)}
	for _, s := range suppliers {
		f.byID[s.ID] = s
	}
	return f
}

func (f *supplierFake) Create(s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}

func (f *supplierFake) GetByID(id string) (*entity.Supplier, error) { return f.byID[id], nil }

func (f *supplierFake) GetByUserID(userID string) (*entity.Supplier, error) {
	for _, s := range f.byID {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *supplierFake) List(limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *supplierFake) Count() (int, error) { return len(f.byID), nil }

func (f *supplierFake) Update(s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}

func (f *supplierFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type customerFake struct {
	byID map[string]*entity.Customer
}

func newCustomerFake(customers ...*entity.Customer) *customerFake {
	f := &customerFake{byID: make(map[string]*entity.Customer)}
	for _, c := range customers {
		f.byID[c.ID] = c
	}
	return f
}

func (f *customerFake) Create(c *entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *customerFake) GetByID(id string) (*entity.Customer, error) { return f.byID[id], nil }

func (f *customerFake) GetByUserID(userID string) (*entity.Customer, error) {
	for _, c := range f.byID {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *customerFake) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *customerFake) Count() (int, error) { return len(f.byID), nil }

func (f *customerFake) Update(c *entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *customerFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type userFake struct {
	byID map[string]*entity.User
}

func newUserFake(users ...*entity.User) *userFake {
	f := &userFake{byID: make(map[string]*entity.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *userFake) Create(u *entity.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *userFake) GetByID(id string) (*entity.User, error) { return f.byID[id], nil }

func (f *userFake) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *userFake) UpdateEmail(id, email string) error {
	if u, ok := f.byID[id]; ok {
		u.Email = email
	}
	return nil
}

func (f *userFake) FirstByRole(role entity.Role) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}

func (f *userFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type notifierFake struct {
	sent []notify.Message
}

var _ notify.Notifier = (*notifierFake)(nil)

func (f *notifierFake) Enqueue(msg notify.Message) { f.sent = append(f.sent, msg) }

// catalogTxFake invoca fn con los fakes directamente, sin transacción real.
type catalogTxFake struct {
	products *productFake
	stocks   *stockFake
	runs     int
}

var _ usecase.CatalogTxRunner = (*catalogTxFake)(nil)

func (f *catalogTxFake) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	f.runs++
	return fn(f.products, f.stocks)
}
