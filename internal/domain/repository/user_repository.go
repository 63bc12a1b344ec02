package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para cuentas de usuario.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdateEmail(id, email string) error
	// FirstByRole retorna el primer usuario con el rol dado (alertas administrativas).
	FirstByRole(role entity.Role) (*entity.User, error)
	Delete(id string) error
}
