package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// TxRunner ejecuta el registro de cuenta y perfil dentro de una transacción.
// Cuenta y perfil nacen juntos; si el perfil falla, la cuenta no queda huérfana.
type TxRunner interface {
	RunAuth(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		supplierRepo repository.SupplierRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// TokenBlocklist registra JTIs revocados hasta su expiración natural.
type TokenBlocklist interface {
	Add(jti string, expiresAt time.Time) error
	Contains(jti string) (bool, error)
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
type AuthUseCase struct {
	txRunner  TxRunner
	userRepo  repository.UserRepository
	blocklist TokenBlocklist
	notifier  notify.Notifier
	jwtCfg    jwt.Config
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	blocklist TokenBlocklist,
	notifier notify.Notifier,
	jwtCfg jwt.Config,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		txRunner:  txRunner,
		userRepo:  userRepo,
		blocklist: blocklist,
		notifier:  notifier,
		jwtCfg:    jwtCfg,
		log:       log,
	}
}

// Register crea la cuenta y su perfil (supplier o customer) en una sola
// transacción. Hashea password con bcrypt y devuelve cuenta más tokens.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		DateCreated:  now,
	}

	err = uc.txRunner.RunAuth(ctx, func(
		userRepo repository.UserRepository,
		supplierRepo repository.SupplierRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		switch role {
		case entity.RoleSupplier:
			return supplierRepo.Create(&entity.Supplier{
				ID:          uuid.New().String(),
				UserID:      user.ID,
				FirstName:   in.FirstName,
				LastName:    in.LastName,
				Age:         in.Age,
				Email:       in.Email,
				PhoneNumber: in.PhoneNumber,
				Address:     in.Address,
				DateCreated: now,
			})
		case entity.RoleCustomer:
			return customerRepo.Create(&entity.Customer{
				ID:          uuid.New().String(),
				UserID:      user.ID,
				FirstName:   in.FirstName,
				LastName:    in.LastName,
				Age:         in.Age,
				Email:       in.Email,
				PhoneNumber: in.PhoneNumber,
				Address:     in.Address,
				DateCreated: now,
			})
		default:
			return domain.ErrInvalidInput
		}
	})
	if err != nil {
		return nil, err
	}

	access, refresh, err := jwt.GeneratePair(uc.jwtCfg, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("usuario registrado")
	uc.notifier.Enqueue(notify.Welcome(user.Email, in.FirstName, user.Role))

	return &dto.RegisterResponse{
		User:   *toUserResponse(user),
		Tokens: dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// Login verifica email/password y emite un par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	access, refresh, err := jwt.GeneratePair(uc.jwtCfg, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("login exitoso")
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh canjea un refresh token válido por un nuevo par. El refresh usado
// se revoca (rotación): canjearlo dos veces falla.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	revoked, err := uc.blocklist.Contains(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.blocklist.Add(claims.ID, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}
	access, refresh, err := jwt.GeneratePair(uc.jwtCfg, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revoca el access token presentado. El JTI queda en la blocklist
// hasta que el token hubiera expirado por sí solo.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, accessToken)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if err := uc.blocklist.Add(claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", claims.UserID).Msg("sesión cerrada")
	return nil
}

// Me devuelve la cuenta del actor autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        string(u.Role),
		DateCreated: u.DateCreated,
	}
}
