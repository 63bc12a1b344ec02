package entity

import "time"

// Supplier es el perfil de proveedor, dueño 1:1 de un User con rol supplier.
type Supplier struct {
	ID          string
	UserID      string // único
	FirstName   string
	LastName    string
	Age         int
	Email       string // único
	PhoneNumber string
	Address     string
	DateCreated time.Time
}
