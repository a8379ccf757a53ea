//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/password"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubOTPRepo struct {
	records []commands.OTPRecord
}

func (s *stubOTPRepo) Insert(_ context.Context, email, code string, expireAt time.Time) error {
	s.records = append(s.records, commands.OTPRecord{
		ID:       uuid.New(),
		Email:    email,
		Code:     code,
		ExpireAt: expireAt,
	})
	return nil
}

func (s *stubOTPRepo) FindLatest(_ context.Context, email, code string) (*commands.OTPRecord, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Email == email && s.records[i].Code == code {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, infra.WrapRepoErr("otp not found", nil, infra.KindNotFound)
}

func (s *stubOTPRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubOTPRepo) DeleteByEmail(_ context.Context, email string) error {
	kept := s.records[:0]
	for _, r := range s.records {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

type stubMailer struct {
	sent []string
}

func (s *stubMailer) SendOTP(_ context.Context, email, code string) error {
	s.sent = append(s.sent, email+":"+code)
	return nil
}

type PasswordResetTestSuite struct {
	suite.Suite
	adminRepo *stubAdminRepo
	otpRepo   *stubOTPRepo
	mailer    *stubMailer
	clock     *clock.MockClock
	commands  commands.PasswordResetCommands
}

const adminEmail = "admin@kelurahan.go.id"

func (s *PasswordResetTestSuite) SetupTest() {
	hash, err := password.HashPassword("Old!Pass1")
	s.Require().NoError(err)

	s.adminRepo = &stubAdminRepo{admins: []*admin.Admin{{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hash,
	}}}
	s.otpRepo = &stubOTPRepo{}
	s.mailer = &stubMailer{}
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.commands = commands.NewPasswordResetCommands(s.adminRepo, s.otpRepo, s.mailer, s.clock)
}

func TestPasswordResetSuite(t *testing.T) {
	suite.Run(t, new(PasswordResetTestSuite))
}

func (s *PasswordResetTestSuite) TestSendOTP() {
	s.Run("stores a 6-digit code and mails it", func() {
		s.Require().NoError(s.commands.SendOTP(context.Background(), adminEmail))
		s.Require().Len(s.otpRepo.records, 1)

		record := s.otpRepo.records[0]
		s.Len(record.Code, 6)
		s.Equal(s.clock.Now().Add(5*time.Minute), record.ExpireAt)
		s.Require().Len(s.mailer.sent, 1)
		s.Contains(s.mailer.sent[0], record.Code)
	})

	s.Run("unregistered email", func() {
		err := s.commands.SendOTP(context.Background(), "stranger@example.com")
		s.ErrorIs(err, commands.ErrEmailNotRegistered)
	})
}

func (s *PasswordResetTestSuite) TestVerifyOTP() {
	s.Require().NoError(s.commands.SendOTP(context.Background(), adminEmail))
	code := s.otpRepo.records[0].Code

	s.Run("valid code within ttl", func() {
		s.NoError(s.commands.VerifyOTP(context.Background(), adminEmail, code))
	})

	s.Run("wrong code", func() {
		err := s.commands.VerifyOTP(context.Background(), adminEmail, "000000")
		s.ErrorIs(err, commands.ErrOTPInvalid)
	})

	s.Run("expired code is rejected and removed", func() {
		s.clock.Add(6 * time.Minute)
		err := s.commands.VerifyOTP(context.Background(), adminEmail, code)
		s.ErrorIs(err, commands.ErrOTPExpired)
		s.Empty(s.otpRepo.records)
	})
}

func (s *PasswordResetTestSuite) TestResetPassword() {
	s.Require().NoError(s.commands.SendOTP(context.Background(), adminEmail))

	s.Run("weak replacement password", func() {
		err := s.commands.ResetPassword(context.Background(), adminEmail, "weakpass")
		s.ErrorIs(err, commands.ErrWeakPassword)
	})

	s.Run("updates the hash and clears codes", func() {
		s.Require().NoError(s.commands.ResetPassword(context.Background(), adminEmail, "New!Pass1"))
		s.NoError(password.ComparePassword(s.adminRepo.admins[0].PasswordHash, "New!Pass1"))
		s.Empty(s.otpRepo.records)
	})
}
