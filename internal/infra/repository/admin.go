package repository

import (
	"context"
	"errors"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count admins", err)
	}
	return count, nil
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)`,
		a.ID, a.Username, a.Email, a.PasswordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create admin", err)
	}
	return nil
}

func (r *AdminRepository) FindByIdentifier(ctx context.Context, identifier string, byEmail bool) (*admin.Admin, error) {
	column := "username"
	if byEmail {
		column = "email"
	}

	var a admin.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at FROM admins WHERE `+column+` = $1`,
		identifier,
	).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin", err)
	}
	return &a, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admins SET password_hash = $2 WHERE email = $1`,
		email, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AdminRepository) RecordLogin(ctx context.Context, adminID uuid.UUID, ip, userAgent string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_login_logs (admin_id, ip_address, user_agent)
		VALUES ($1, $2, $3)`,
		adminID, ip, userAgent,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record login", err)
	}
	return nil
}

func (r *AdminRepository) CloseOpenLogins(ctx context.Context, adminID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admin_login_logs SET logout_time = now()
		WHERE admin_id = $1 AND logout_time IS NULL`,
		adminID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close login logs", err)
	}
	return nil
}
