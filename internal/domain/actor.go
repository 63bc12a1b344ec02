package domain

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Actor es la identidad autenticada que ejecuta una operación.
// Los predicados concentran las reglas de autorización por rol/propiedad,
// en lugar de comparar strings de rol en cada servicio.
type Actor struct {
	UserID string
	Role   entity.Role
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// CanActForSupplier permite a un admin, o al supplier dueño del perfil, operar sobre él.
func (a Actor) CanActForSupplier(s *entity.Supplier) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == entity.RoleSupplier && s != nil && s.UserID == a.UserID
}

// CanActForCustomer permite a un admin, o al customer dueño del perfil, operar sobre él.
func (a Actor) CanActForCustomer(c *entity.Customer) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == entity.RoleCustomer && c != nil && c.UserID == a.UserID
}
