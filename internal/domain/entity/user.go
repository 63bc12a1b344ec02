package entity

import "time"

// Role es el conjunto cerrado de roles del sistema. Se usa como tipo propio
// para que la autorización sea por predicado y no por comparación de strings sueltos.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSupplier Role = "supplier"
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// ParseRole valida un rol recibido como string. Retorna false si no pertenece al conjunto.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSupplier, RoleCustomer, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// User representa una cuenta del sistema. Supplier y Customer son perfiles 1:1 sobre User.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         Role
	DateCreated  time.Time
}
