package entity

import "time"

// Category agrupa productos. No puede eliminarse mientras tenga productos asociados.
type Category struct {
	ID          string
	Name        string // único
	DateCreated time.Time
}
