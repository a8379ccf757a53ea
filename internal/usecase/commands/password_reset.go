package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/pkg/password"
)

var (
	ErrEmailNotRegistered = errs.New("email is not registered")
	ErrOTPInvalid         = errs.New("otp is incorrect")
	ErrOTPExpired         = errs.New("otp has expired")
)

const otpTTL = 5 * time.Minute

type PasswordResetCommands interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type passwordResetImpl struct {
	adminRepo AdminRepository
	otpRepo   OTPRepository
	mailer    OTPMailer
	clock     clock.Clock
}

func NewPasswordResetCommands(adminRepo AdminRepository, otpRepo OTPRepository, mailer OTPMailer, clk clock.Clock) PasswordResetCommands {
	return &passwordResetImpl{
		adminRepo: adminRepo,
		otpRepo:   otpRepo,
		mailer:    mailer,
		clock:     clk,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (c *passwordResetImpl) SendOTP(ctx context.Context, email string) error {
	if _, err := c.adminRepo.FindByIdentifier(ctx, email, true); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEmailNotRegistered
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	code, err := generateOTP()
	if err != nil {
		return errs.Wrap(err, "failed to generate otp")
	}

	expireAt := c.clock.Now().Add(otpTTL)
	if err := c.otpRepo.Insert(ctx, email, code, expireAt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.mailer.SendOTP(ctx, email, code); err != nil {
		return errs.Wrap(err, "failed to send otp mail")
	}
	return nil
}

func (c *passwordResetImpl) VerifyOTP(ctx context.Context, email, code string) error {
	record, err := c.otpRepo.FindLatest(ctx, email, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOTPInvalid
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if c.clock.Now().After(record.ExpireAt) {
		// Expired codes are removed so they cannot be retried.
		_ = c.otpRepo.DeleteByID(ctx, record.ID)
		return ErrOTPExpired
	}
	return nil
}

func (c *passwordResetImpl) ResetPassword(ctx context.Context, email, newPassword string) error {
	if !admin.LooksLikeEmail(email) {
		return ErrEmailNotRegistered
	}

	if err := password.ValidateStrength(newPassword); err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}

	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	if err := c.adminRepo.UpdatePassword(ctx, email, hash); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
