package repository

import (
	"context"
	"errors"
	"time"

	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const reservationColumns = `
	id, room_id, request_date, loan_date,
	session, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	borrower_name, position, national_id, address, phone, items_brought, purpose,
	status, validated_at, validated_by, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, db DBTX, res *booking.Reservation) error {
	session, start, end := specColumns(res.Spec)

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (
			id, room_id, request_date, loan_date,
			session, start_time, end_time,
			borrower_name, position, national_id, address, phone,
			items_brought, purpose, status
		)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8, $9, $10, $11, $12, $13, $14, $15)`,
		res.ID, res.RoomID, res.RequestDate, res.LoanDate,
		session, start, end,
		res.BorrowerName, nullIfEmpty(res.Position), res.NationalID,
		nullIfEmpty(res.Address), nullIfEmpty(res.Phone),
		nullIfEmpty(res.ItemsBrought), nullIfEmpty(res.Purpose),
		res.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, db DBTX, res *booking.Reservation) error {
	session, start, end := specColumns(res.Spec)

	tag, err := db.Exec(ctx, `
		UPDATE reservations SET
			room_id = $2, request_date = $3, loan_date = $4,
			session = $5, start_time = $6::time, end_time = $7::time,
			borrower_name = $8, position = $9, national_id = $10,
			address = $11, phone = $12, items_brought = $13, purpose = $14,
			updated_at = now()
		WHERE id = $1`,
		res.ID, res.RoomID, res.RequestDate, res.LoanDate,
		session, start, end,
		res.BorrowerName, nullIfEmpty(res.Position), res.NationalID,
		nullIfEmpty(res.Address), nullIfEmpty(res.Phone),
		nullIfEmpty(res.ItemsBrought), nullIfEmpty(res.Purpose),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdateDecision(ctx context.Context, db DBTX, res *booking.Reservation) error {
	tag, err := db.Exec(ctx, `
		UPDATE reservations SET
			status = $2, validated_at = $3, validated_by = $4, updated_at = now()
		WHERE id = $1`,
		res.ID, res.Status.String(), res.ValidatedAt, res.ValidatedBy,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*booking.Reservation, error) {
	row := db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindBlockingSpecs(
	ctx context.Context,
	db DBTX,
	roomID uuid.UUID,
	loanDate time.Time,
	excludeID *uuid.UUID,
) ([]booking.TimeSpec, error) {
	sql := `
		SELECT session, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM reservations
		WHERE room_id = $1 AND loan_date = $2 AND status <> $3`
	args := []any{roomID, loanDate, booking.StatusRejected.String()}
	if excludeID != nil {
		sql += ` AND id <> $4`
		args = append(args, *excludeID)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocking reservations", err)
	}
	defer rows.Close()

	var specs []booking.TimeSpec
	for rows.Next() {
		var session, start, end *string
		if err := rows.Scan(&session, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking reservation", err)
		}
		spec, err := specFromColumns(session, start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has malformed time spec", err)
		}
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking reservations", err)
	}
	return specs, nil
}

// AcquireSlotLock takes a transaction-scoped advisory lock keyed on the
// room and loan date. Released automatically at commit/rollback.
func (r *ReservationRepository) AcquireSlotLock(ctx context.Context, db DBTX, roomID uuid.UUID, loanDate time.Time) error {
	_, err := db.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`,
		roomID.String(), loanDate.Format("2006-01-02"),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		res                              booking.Reservation
		session, start, end              *string
		position, address, phone         *string
		itemsBrought, purpose            *string
		status                           string
	)
	err := row.Scan(
		&res.ID, &res.RoomID, &res.RequestDate, &res.LoanDate,
		&session, &start, &end,
		&res.BorrowerName, &position, &res.NationalID, &address, &phone,
		&itemsBrought, &purpose,
		&status, &res.ValidatedAt, &res.ValidatedBy, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	spec, err := specFromColumns(session, start, end)
	if err != nil {
		return nil, err
	}
	res.Spec = spec
	res.Status = booking.Status(status)
	res.Position = emptyIfNull(position)
	res.Address = emptyIfNull(address)
	res.Phone = emptyIfNull(phone)
	res.ItemsBrought = emptyIfNull(itemsBrought)
	res.Purpose = emptyIfNull(purpose)
	return &res, nil
}

// ---- read side ----

type ReservationViewRepository struct {
	db DBTX
}

func NewReservationViewRepository(db DBTX) *ReservationViewRepository {
	return &ReservationViewRepository{db: db}
}

var _ queries.ReservationViewRepo = (*ReservationViewRepository)(nil)

const reservationViewSelect = `
	SELECT
		r.id, r.room_id, rm.name, rm.type, r.request_date, r.loan_date,
		r.session, to_char(r.start_time, 'HH24:MI'), to_char(r.end_time, 'HH24:MI'),
		r.borrower_name, r.position, r.national_id, r.address, r.phone,
		r.items_brought, r.purpose, r.status, r.validated_at, r.validated_by,
		r.created_at, r.updated_at
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id`

func (r *ReservationViewRepository) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSelect+`
		ORDER BY r.loan_date DESC, r.start_time ASC NULLS LAST`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func (r *ReservationViewRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (r *ReservationViewRepository) FindOccupied(ctx context.Context, roomID uuid.UUID, date time.Time) ([]queries.OccupiedSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT session, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM reservations
		WHERE room_id = $1 AND loan_date = $2 AND status <> $3`,
		roomID, date, booking.StatusRejected.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied slots", err)
	}
	defer rows.Close()

	slots := []queries.OccupiedSlot{}
	for rows.Next() {
		var slot queries.OccupiedSlot
		if err := rows.Scan(&slot.Session, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", err)
	}
	return slots, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.RoomType,
		&view.RequestDate, &view.LoanDate,
		&view.Session, &view.StartTime, &view.EndTime,
		&view.BorrowerName, &view.Position, &view.NationalID,
		&view.Address, &view.Phone, &view.ItemsBrought, &view.Purpose,
		&view.Status, &view.ValidatedAt, &view.ValidatedBy,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
