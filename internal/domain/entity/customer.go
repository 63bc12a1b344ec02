package entity

import "time"

// Customer es el perfil de cliente, dueño 1:1 de un User con rol customer.
type Customer struct {
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
