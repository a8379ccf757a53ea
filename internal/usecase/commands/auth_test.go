//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/jwt"
	"kelurahan-booking/internal/pkg/password"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAdminRepo struct {
	admins      []*admin.Admin
	logins      []uuid.UUID
	logouts     []uuid.UUID
	newPassword string
}

func (s *stubAdminRepo) Count(_ context.Context) (int, error) {
	return len(s.admins), nil
}

func (s *stubAdminRepo) Create(_ context.Context, a *admin.Admin) error {
	s.admins = append(s.admins, a)
	return nil
}

func (s *stubAdminRepo) FindByIdentifier(_ context.Context, identifier string, byEmail bool) (*admin.Admin, error) {
	for _, a := range s.admins {
		if byEmail && a.Email == identifier {
			return a, nil
		}
		if !byEmail && a.Username == identifier {
			return a, nil
		}
	}
	return nil, infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
}

func (s *stubAdminRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	for _, a := range s.admins {
		if a.Email == email {
			a.PasswordHash = passwordHash
			s.newPassword = passwordHash
			return nil
		}
	}
	return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
}

func (s *stubAdminRepo) RecordLogin(_ context.Context, adminID uuid.UUID, _, _ string) error {
	s.logins = append(s.logins, adminID)
	return nil
}

func (s *stubAdminRepo) CloseOpenLogins(_ context.Context, adminID uuid.UUID) error {
	s.logouts = append(s.logouts, adminID)
	return nil
}

type AuthCommandsTestSuite struct {
	suite.Suite
	repo     *stubAdminRepo
	tokens   *jwt.Service
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.repo = &stubAdminRepo{}
	s.tokens = jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.repo, s.tokens)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) register() {
	err := s.commands.Register(context.Background(), commands.RegisterInput{
		Username: "admin",
		Email:    "admin@kelurahan.go.id",
		Password: "Str0ng!Pass",
	})
	s.Require().NoError(err)
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("first registration succeeds", func() {
		s.register()
		s.Require().Len(s.repo.admins, 1)
		s.Equal("admin", s.repo.admins[0].Username)
		s.NoError(password.ComparePassword(s.repo.admins[0].PasswordHash, "Str0ng!Pass"))
	})

	s.Run("second registration is refused", func() {
		err := s.commands.Register(context.Background(), commands.RegisterInput{
			Username: "second",
			Email:    "second@kelurahan.go.id",
			Password: "Str0ng!Pass",
		})
		s.ErrorIs(err, commands.ErrAdminExists)
	})
}

func (s *AuthCommandsTestSuite) TestRegisterValidation() {
	s.Run("missing fields", func() {
		err := s.commands.Register(context.Background(), commands.RegisterInput{Username: "admin"})
		s.ErrorIs(err, commands.ErrMissingFields)
	})

	s.Run("weak password", func() {
		err := s.commands.Register(context.Background(), commands.RegisterInput{
			Username: "admin",
			Email:    "admin@kelurahan.go.id",
			Password: "weakpass",
		})
		s.ErrorIs(err, commands.ErrWeakPassword)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.register()

	s.Run("by username", func() {
		result, err := s.commands.Login(context.Background(), commands.LoginInput{
			Identifier: "admin",
			Password:   "Str0ng!Pass",
		})
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
		s.Equal("admin", result.Username)

		claims, err := s.tokens.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(result.AdminID, claims.AdminID)
	})

	s.Run("by email", func() {
		result, err := s.commands.Login(context.Background(), commands.LoginInput{
			Identifier: "admin@kelurahan.go.id",
			Password:   "Str0ng!Pass",
		})
		s.Require().NoError(err)
		s.Equal("admin@kelurahan.go.id", result.Email)
	})

	s.Run("records login audit row", func() {
		s.NotEmpty(s.repo.logins)
	})

	s.Run("wrong password", func() {
		_, err := s.commands.Login(context.Background(), commands.LoginInput{
			Identifier: "admin",
			Password:   "wrong",
		})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown identifier", func() {
		_, err := s.commands.Login(context.Background(), commands.LoginInput{
			Identifier: "nobody",
			Password:   "Str0ng!Pass",
		})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	s.register()
	adminID := s.repo.admins[0].ID
	s.Require().NoError(s.commands.Logout(context.Background(), adminID))
	s.Contains(s.repo.logouts, adminID)
}

func (s *AuthCommandsTestSuite) TestAdminExists() {
	exists, err := s.commands.AdminExists(context.Background())
	s.Require().NoError(err)
	s.False(exists)

	s.register()

	exists, err = s.commands.AdminExists(context.Background())
	s.Require().NoError(err)
	s.True(exists)
}
