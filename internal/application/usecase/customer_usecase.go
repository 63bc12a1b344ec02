package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// CustomerUseCase administración de perfiles de cliente. Mismas reglas de
// acceso que los proveedores: listado administrativo, lectura y edición para
// admin o dueño.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	userRepo repository.UserRepository
	notifier notify.Notifier
	log      *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	userRepo repository.UserRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, userRepo: userRepo, notifier: notifier, log: log}
}

// List lista perfiles de cliente (solo admin).
func (uc *CustomerUseCase) List(ctx context.Context, actor domain.Actor, page dto.PageRequest) (*dto.PartyListResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, customerToParty(c))
	}
	return &dto.PartyListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// GetByID obtiene un perfil. Admin o dueño.
func (uc *CustomerUseCase) GetByID(ctx context.Context, actor domain.Actor, id string) (*dto.PartyResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForCustomer(c) {
		return nil, domain.ErrForbidden
	}
	resp := customerToParty(c)
	return &resp, nil
}

// Update edita un perfil. Un cambio de email se propaga a la cuenta de usuario.
func (uc *CustomerUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForCustomer(c) {
		return nil, domain.ErrForbidden
	}

	applyPartyUpdate(&c.FirstName, &c.LastName, &c.Age, &c.Email, &c.PhoneNumber, &c.Address, in)
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := uc.userRepo.UpdateEmail(c.UserID, *in.Email); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Str("customer_id", id).Msg("perfil de cliente actualizado")
	resp := customerToParty(c)
	return &resp, nil
}

// Delete elimina el perfil y su cuenta de usuario.
func (uc *CustomerUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !actor.CanActForCustomer(c) {
		return domain.ErrForbidden
	}
	if err := uc.userRepo.Delete(c.UserID); err != nil {
		return err
	}
	uc.log.Info().Str("customer_id", id).Str("user_id", c.UserID).Msg("cliente eliminado")
	uc.notifier.Enqueue(notify.ProfileDeleted(c.FirstName, c.Email))
	return nil
}

func customerToParty(c *entity.Customer) dto.PartyResponse {
	return dto.PartyResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Age:         c.Age,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		DateCreated: c.DateCreated,
	}
}
