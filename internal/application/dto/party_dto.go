package dto

import "time"

// UpdatePartyRequest entrada parcial para actualizar un perfil de proveedor o cliente.
// Un cambio de email se propaga a la cuenta de usuario dueña.
type UpdatePartyRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Age         *int    `json:"age" validate:"omitempty,min=18"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
}

// PartyResponse salida de un perfil de proveedor o cliente.
type PartyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Age         int       `json:"age"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	DateCreated time.Time `json:"date_created"`
}

// PartyListResponse lista paginada de perfiles.
type PartyListResponse struct {
	Items      []PartyResponse `json:"items"`
	Pagination Pagination      `json:"pagination"`
}
