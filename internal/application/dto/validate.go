package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/almacen-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate chequea las tags `validate` de un request. Un fallo se reporta como
// domain.ErrInvalidInput envuelto con el detalle del validador.
func Validate(in any) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
