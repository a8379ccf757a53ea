package commands

import (
	"context"
	"log/slog"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/pkg/jwt"
	"kelurahan-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrAdminExists        = errs.New("an administrator is already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrWeakPassword       = errs.New("password does not meet the strength policy")
	ErrMissingFields      = errs.New("all fields are required")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Identifier string
	Password   string
	IP         string
	UserAgent  string
}

type LoginResult struct {
	Token    string
	AdminID  uuid.UUID
	Username string
	Email    string
}

type AuthCommands interface {
	// Register creates the administrator account; the office runs with a
	// single admin, so this succeeds only once.
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, adminID uuid.UUID) error
	AdminExists(ctx context.Context) (bool, error)
}

type authCommandsImpl struct {
	adminRepo AdminRepository
	tokens    *jwt.Service
}

func NewAuthCommands(adminRepo AdminRepository, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return ErrMissingFields
	}

	count, err := c.adminRepo.Count(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return ErrAdminExists
	}

	if err := password.ValidateStrength(in.Password); err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	entity := &admin.Admin{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := c.adminRepo.Create(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	account, err := c.adminRepo.FindByIdentifier(ctx, in.Identifier, admin.LooksLikeEmail(in.Identifier))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(account.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := c.adminRepo.RecordLogin(ctx, account.ID, in.IP, in.UserAgent); err != nil {
		slog.Warn("failed to record login audit row", "admin_id", account.ID, "error", err)
	}

	token, err := c.tokens.GenerateToken(account.ID, account.Username, account.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:    token,
		AdminID:  account.ID,
		Username: account.Username,
		Email:    account.Email,
	}, nil
}

func (c *authCommandsImpl) Logout(ctx context.Context, adminID uuid.UUID) error {
	if err := c.adminRepo.CloseOpenLogins(ctx, adminID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *authCommandsImpl) AdminExists(ctx context.Context) (bool, error) {
	count, err := c.adminRepo.Count(ctx)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return count > 0, nil
}
