package order_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Dobles en memoria para ejercitar los casos de uso de pedidos sin Postgres.
// Cada fake implementa el puerto completo; los métodos que un test no toca
// operan igual sobre los mapas internos.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type stockFake struct {
	byProduct map[string]*entity.Stock
	updates   int
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
	f.updates++
	return nil
}

func (f *stockFake) DeleteByProductID(productID string) error {
	delete(f.byProduct, productID)
	return nil
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

type incomingFake struct {
	byID map[string]*entity.IncomingOrder
}

func newIncomingFake(orders ...*entity.IncomingOrder) *incomingFake {
	f := &incomingFake{byID: make(map[string]*entity.IncomingOrder)}
	for _, o := range orders {
		f.byID[o.ID] = o
	}
	return f
}

func (f *incomingFake) Create(o *entity.IncomingOrder) error {
	f.byID[o.ID] = o
	return nil
}

func (f *incomingFake) GetByID(id string) (*entity.IncomingOrder, error) { return f.byID[id], nil }

func (f *incomingFake) List(limit, offset int) ([]*entity.IncomingOrder, error) {
	out := make([]*entity.IncomingOrder, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *incomingFake) Count() (int, error) { return len(f.byID), nil }

func (f *incomingFake) ListBySupplier(supplierID string, limit, offset int) ([]*entity.IncomingOrder, error) {
	var out []*entity.IncomingOrder
	for _, o := range f.byID {
		if o.SupplierID == supplierID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *incomingFake) CountBySupplier(supplierID string) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (f *incomingFake) Update(o *entity.IncomingOrder) error {
	f.byID[o.ID] = o
	return nil
}

func (f *incomingFake) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type outgoingFake struct {
	byID map[string]*entity.OutgoingOrder
}

func newOutgoingFake(orders ...*entity.OutgoingOrder) *outgoingFake {
	f := &outgoingFake{byID: make(map[string]*entity.OutgoingOrder)}
	for _, o := range orders {
		f.byID[o.ID] = o
	}
	return f
}

func (f *outgoingFake) Create(o *entity.OutgoingOrder) error {
	f.byID[o.ID] = o
	return nil
}

func (f *outgoingFake) GetByID(id string) (*entity.OutgoingOrder, error) { return f.byID[id], nil }

func (f *outgoingFake) List(limit, offset int) ([]*entity.OutgoingOrder, error) {
	out := make([]*entity.OutgoingOrder, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *outgoingFake) Count() (int, error) { return len(f.byID), nil }

func (f *outgoingFake) ListByCustomer(customerID string, limit, offset int) ([]*entity.OutgoingOrder, error) {
	var out []*entity.OutgoingOrder
	for _, o := range f.byID {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *outgoingFake) CountByCustomer(customerID string) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *outgoingFake) Update(o *entity.OutgoingOrder) error {
	f.byID[o.ID] = o
	return nil
}

func (f *outgoingFake) Delete(id string) error {
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

// txRunnerFake invoca fn con los fakes directamente. Si fn retorna error, el
// caller no debe observar efectos; como los fakes mutan en el lugar, los tests
// que esperan rollback solo afirman sobre operaciones que fallan antes de escribir.
type txRunnerFake struct {
	stocks    *stockFake
	products  *productFake
	incomings *incomingFake
	outgoings *outgoingFake
	runs      int
}

var _ order.TxRunner = (*txRunnerFake)(nil)

func (f *txRunnerFake) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	incomingRepo repository.IncomingOrderRepository,
	outgoingRepo repository.OutgoingOrderRepository,
) error) error {
	f.runs++
	return fn(f.stocks, f.products, f.incomings, f.outgoings)
}

// notifierFake registra los mensajes encolados para afirmar sobre ellos.
type notifierFake struct {
	mu   sync.Mutex
	sent []notify.Message
}

var _ notify.Notifier = (*notifierFake)(nil)

func (f *notifierFake) Enqueue(msg notify.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
}

func (f *notifierFake) messages() []notify.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notify.Message, len(f.sent))
	copy(out, f.sent)
	return out
}
