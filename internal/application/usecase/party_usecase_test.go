package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	supplierID      = "8f7e6d5c-4b3a-4291-8076-5f4e3d2c1b0a"
	supplierUserID  = "7e6d5c4b-3a29-4180-9f6e-5d4c3b2a1908"
	otherSupUserID  = "6d5c4b3a-2918-4076-8e5d-4c3b2a190877"
	customerUserID2 = "5c4b3a29-1807-4f6e-9d5c-3b2a19087766"
)

func adminActor() domain.Actor {
	return domain.Actor{UserID: "4b3a2918-0766-4e5d-8c4b-2a1908776655", Role: entity.RoleAdmin}
}

type partyFixture struct {
	suppliers *supplierFake
	customers *customerFake
	users     *userFake
	notifier  *notifierFake
	supplier  *entity.Supplier
	customer  *entity.Customer
	supUC     *usecase.SupplierUseCase
	custUC    *usecase.CustomerUseCase
}

func newPartyFixture(t *testing.T) *partyFixture {
	t.Helper()

	supplier := &entity.Supplier{
		ID:        supplierID,
		UserID:    supplierUserID,
		FirstName: "Rosa",
		Email:     "rosa@proveedores.com",
	}
	customer := &entity.Customer{
		ID:        "3a291807-6655-4d4c-9b3a-190877665544",
		UserID:    customerUserID2,
		FirstName: "Ana",
		Email:     "ana@clientes.com",
	}
	supUser := &entity.User{ID: supplierUserID, Email: supplier.Email, Role: entity.RoleSupplier}
	custUser := &entity.User{ID: customerUserID2, Email: customer.Email, Role: entity.RoleCustomer}

	suppliers := newSupplierFake(supplier)
	customers := newCustomerFake(customer)
	users := newUserFake(supUser, custUser)
	notifier := &notifierFake{}

	return &partyFixture{
		suppliers: suppliers,
		customers: customers,
		users:     users,
		notifier:  notifier,
		supplier:  supplier,
		customer:  customer,
		supUC:     usecase.NewSupplierUseCase(suppliers, users, notifier, testLogger()),
		custUC:    usecase.NewCustomerUseCase(customers, users, notifier, testLogger()),
	}
}

func TestSupplierList_SoloAdmin(t *testing.T) {
	fx := newPartyFixture(t)

	resp, err := fx.supUC.List(context.Background(), adminActor(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	owner := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	_, err = fx.supUC.List(context.Background(), owner, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSupplierGet_AdminODueno(t *testing.T) {
	fx := newPartyFixture(t)

	owner := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	resp, err := fx.supUC.GetByID(context.Background(), owner, supplierID)
	require.NoError(t, err)
	assert.Equal(t, "Rosa", resp.FirstName)

	stranger := domain.Actor{UserID: otherSupUserID, Role: entity.RoleSupplier}
	_, err = fx.supUC.GetByID(context.Background(), stranger, supplierID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.supUC.GetByID(context.Background(), adminActor(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierUpdate_PropagaEmailALaCuenta(t *testing.T) {
	fx := newPartyFixture(t)

	email := "rosa.nueva@proveedores.com"
	owner := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	resp, err := fx.supUC.Update(context.Background(), owner, supplierID, dto.UpdatePartyRequest{
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, email, resp.Email)

	user, _ := fx.users.GetByID(supplierUserID)
	assert.Equal(t, email, user.Email)
}

func TestSupplierUpdate_CamposParciales(t *testing.T) {
	fx := newPartyFixture(t)

	phone := "+57 311 222 3344"
	resp, err := fx.supUC.Update(context.Background(), adminActor(), supplierID, dto.UpdatePartyRequest{
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, resp.PhoneNumber)
	assert.Equal(t, "Rosa", resp.FirstName)

	// Sin cambio de email no se toca la cuenta.
	user, _ := fx.users.GetByID(supplierUserID)
	assert.Equal(t, "rosa@proveedores.com", user.Email)
}

func TestSupplierDelete_EliminaCuentaYNotifica(t *testing.T) {
	fx := newPartyFixture(t)

	require.NoError(t, fx.supUC.Delete(context.Background(), adminActor(), supplierID))

	user, _ := fx.users.GetByID(supplierUserID)
	assert.Nil(t, user)

	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, "rosa@proveedores.com", fx.notifier.sent[0].To)
	assert.Equal(t, "Cuenta eliminada", fx.notifier.sent[0].Subject)
}

func TestSupplierDelete_SoloAdminODueno(t *testing.T) {
	fx := newPartyFixture(t)

	stranger := domain.Actor{UserID: otherSupUserID, Role: entity.RoleSupplier}
	err := fx.supUC.Delete(context.Background(), stranger, supplierID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, _ := fx.suppliers.GetByID(supplierID)
	assert.NotNil(t, got)
}

func TestCustomerGet_AdminODueno(t *testing.T) {
	fx := newPartyFixture(t)

	owner := domain.Actor{UserID: customerUserID2, Role: entity.RoleCustomer}
	resp, err := fx.custUC.GetByID(context.Background(), owner, fx.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.FirstName)

	// Un supplier no puede leer perfiles de cliente ajenos.
	supplierActor := domain.Actor{UserID: supplierUserID, Role: entity.RoleSupplier}
	_, err = fx.custUC.GetByID(context.Background(), supplierActor, fx.customer.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomerDelete_DuenoEliminaSuPerfil(t *testing.T) {
	fx := newPartyFixture(t)

	owner := domain.Actor{UserID: customerUserID2, Role: entity.RoleCustomer}
	require.NoError(t, fx.custUC.Delete(context.Background(), owner, fx.customer.ID))

	user, _ := fx.users.GetByID(customerUserID2)
	assert.Nil(t, user)
	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, "ana@clientes.com", fx.notifier.sent[0].To)
}
