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

// SupplierUseCase administración de perfiles de proveedor. El listado es
// administrativo; lectura y edición admiten al admin o al dueño del perfil.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	userRepo repository.UserRepository
	notifier notify.Notifier
	log      *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	userRepo repository.UserRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, userRepo: userRepo, notifier: notifier, log: log}
}

// List lista perfiles de proveedor (solo admin).
func (uc *SupplierUseCase) List(ctx context.Context, actor domain.Actor, page dto.PageRequest) (*dto.PartyListResponse, error) {
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
	for _, s := range list {
		items = append(items, supplierToParty(s))
	}
	return &dto.PartyListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.PerPage, total),
	}, nil
}

// GetByID obtiene un perfil. Admin o dueño.
func (uc *SupplierUseCase) GetByID(ctx context.Context, actor domain.Actor, id string) (*dto.PartyResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForSupplier(s) {
		return nil, domain.ErrForbidden
	}
	resp := supplierToParty(s)
	return &resp, nil
}

// Update edita un perfil. Un cambio de email se propaga a la cuenta de usuario.
func (uc *SupplierUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanActForSupplier(s) {
		return nil, domain.ErrForbidden
	}

	applyPartyUpdate(&s.FirstName, &s.LastName, &s.Age, &s.Email, &s.PhoneNumber, &s.Address, in)
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := uc.userRepo.UpdateEmail(s.UserID, *in.Email); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Str("supplier_id", id).Msg("perfil de proveedor actualizado")
	resp := supplierToParty(s)
	return &resp, nil
}

// Delete elimina el perfil y su cuenta de usuario. La fila del perfil cae en
// cascada al borrar el usuario dueño.
func (uc *SupplierUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if !actor.CanActForSupplier(s) {
		return domain.ErrForbidden
	}
	if err := uc.userRepo.Delete(s.UserID); err != nil {
		return err
	}
	uc.log.Info().Str("supplier_id", id).Str("user_id", s.UserID).Msg("proveedor eliminado")
	uc.notifier.Enqueue(notify.ProfileDeleted(s.FirstName, s.Email))
	return nil
}

func supplierToParty(s *entity.Supplier) dto.PartyResponse {
	return dto.PartyResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Age:         s.Age,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		DateCreated: s.DateCreated,
	}
}

// applyPartyUpdate aplica los campos presentes del request sobre el perfil.
func applyPartyUpdate(firstName, lastName *string, age *int, email, phone, address *string, in dto.UpdatePartyRequest) {
	if in.FirstName != nil {
		*firstName = *in.FirstName
	}
	if in.LastName != nil {
		*lastName = *in.LastName
	}
	if in.Age != nil {
		*age = *in.Age
	}
	if in.Email != nil {
		*email = *in.Email
	}
	if in.PhoneNumber != nil {
		*phone = *in.PhoneNumber
	}
	if in.Address != nil {
		*address = *in.Address
	}
}
