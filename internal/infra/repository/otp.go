package repository

import (
	"context"
	"errors"
	"time"

	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OTPRepository struct {
	db DBTX
}

func NewOTPRepository(db DBTX) *OTPRepository {
	return &OTPRepository{db: db}
}

var _ commands.OTPRepository = (*OTPRepository)(nil)

func (r *OTPRepository) Insert(ctx context.Context, email, code string, expireAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_otps (id, email, code, expire_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), email, code, expireAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert otp", err)
	}
	return nil
}

func (r *OTPRepository) FindLatest(ctx context.Context, email, code string) (*commands.OTPRecord, error) {
	var record commands.OTPRecord
	err := r.db.QueryRow(ctx, `
		SELECT id, email, code, expire_at
		FROM password_reset_otps
		WHERE email = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		email, code,
	).Scan(&record.ID, &record.Email, &record.Code, &record.ExpireAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("otp not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find otp", err)
	}
	return &record, nil
}

func (r *OTPRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_otps WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete otp", err)
	}
	return nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_otps WHERE email = $1`, email)
	if err != nil {
		return infra.WrapRepoErr("failed to delete otps for email", err)
	}
	return nil
}
