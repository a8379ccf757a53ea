package repository

import (
	"context"
	"errors"
	"time"

	"kelurahan-booking/internal/domain/guest"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GuestRepository struct {
	db DBTX
}

func NewGuestRepository(db DBTX) *GuestRepository {
	return &GuestRepository{db: db}
}

var _ queries.GuestViewRepo = (*GuestRepository)(nil)

// Create assigns the next sequence number within the visit date.
func (r *GuestRepository) Create(ctx context.Context, db DBTX, g *guest.Guest) (int, error) {
	err := db.QueryRow(ctx, `
		INSERT INTO guests (id, number, visit_date, name, address, phone, purpose)
		VALUES ($1, (SELECT count(*) + 1 FROM guests WHERE visit_date = $2), $2, $3, $4, $5, $6)
		RETURNING number`,
		g.ID, g.VisitDate, g.Name, g.Address, g.Phone, g.Purpose,
	).Scan(&g.Number)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create guest", err)
	}
	return g.Number, nil
}

func (r *GuestRepository) Update(ctx context.Context, db DBTX, g *guest.Guest) error {
	tag, err := db.Exec(ctx, `
		UPDATE guests SET
			visit_date = $2, name = $3, address = $4, phone = $5, purpose = $6,
			updated_at = now()
		WHERE id = $1`,
		g.ID, g.VisitDate, g.Name, g.Address, g.Phone, g.Purpose,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete returns the visit date of the removed entry so the caller can
// renumber the remaining entries for that date.
func (r *GuestRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) (time.Time, error) {
	var visitDate time.Time
	err := db.QueryRow(ctx,
		`DELETE FROM guests WHERE id = $1 RETURNING visit_date`, id,
	).Scan(&visitDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return time.Time{}, infra.WrapRepoErr("failed to delete guest", err)
	}
	return visitDate, nil
}

func (r *GuestRepository) Renumber(ctx context.Context, db DBTX, visitDate time.Time) error {
	_, err := db.Exec(ctx, `
		UPDATE guests g SET number = ranked.rn
		FROM (
			SELECT id, row_number() OVER (ORDER BY created_at, id) AS rn
			FROM guests
			WHERE visit_date = $1
		) ranked
		WHERE g.id = ranked.id`,
		visitDate,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to renumber guests", err)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*guest.Guest, error) {
	var g guest.Guest
	err := db.QueryRow(ctx, `
		SELECT id, number, visit_date, name, address, phone, purpose, created_at, updated_at
		FROM guests WHERE id = $1`, id,
	).Scan(&g.ID, &g.Number, &g.VisitDate, &g.Name, &g.Address, &g.Phone, &g.Purpose, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return &g, nil
}

// ---- read side ----

func (r *GuestRepository) FindAll(ctx context.Context) ([]*queries.GuestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, visit_date, name, address, phone, purpose, created_at, updated_at
		FROM guests
		ORDER BY visit_date ASC, number ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var views []*queries.GuestView
	for rows.Next() {
		var view queries.GuestView
		if err := rows.Scan(
			&view.ID, &view.Number, &view.VisitDate, &view.Name,
			&view.Address, &view.Phone, &view.Purpose,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return views, nil
}

func (r *GuestRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	var view queries.GuestView
	err := r.db.QueryRow(ctx, `
		SELECT id, number, visit_date, name, address, phone, purpose, created_at, updated_at
		FROM guests WHERE id = $1`, id,
	).Scan(
		&view.ID, &view.Number, &view.VisitDate, &view.Name,
		&view.Address, &view.Phone, &view.Purpose,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return &view, nil
}
