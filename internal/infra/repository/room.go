package repository

import (
	"context"
	"errors"
	"time"

	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/domain/room"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

var _ queries.RoomViewRepo = (*RoomRepository)(nil)

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var view queries.RoomView
	var code *string
	err := r.db.QueryRow(ctx,
		`SELECT id, name, type, code FROM rooms WHERE id = $1`, id,
	).Scan(&view.ID, &view.Name, &view.Type, &code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	view.Code = emptyIfNull(code)
	return &view, nil
}

func (r *RoomRepository) FindAll(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	sql := `SELECT id, name, type, code FROM rooms`
	args := []any{}

	switch filter.Mode {
	case queries.RoomModeOffice:
		sql += ` WHERE type = $1`
		args = append(args, string(room.TypeOffice))
	case queries.RoomModeCommunity:
		if filter.Code != "" {
			sql += ` WHERE type = $1 AND code = $2`
			args = append(args, string(room.TypeCommunity), filter.Code)
		} else {
			sql += ` WHERE type = $1`
			args = append(args, string(room.TypeCommunity))
		}
	}
	sql += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

// FindWithoutApprovedReservation lists rooms with no approved booking on
// the given date.
func (r *RoomRepository) FindWithoutApprovedReservation(ctx context.Context, date time.Time) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rm.id, rm.name, rm.type, rm.code
		FROM rooms rm
		LEFT JOIN reservations res
			ON rm.id = res.room_id
			AND res.loan_date = $1
			AND res.status = $2
		WHERE res.id IS NULL
		ORDER BY rm.name`,
		date, booking.StatusApproved.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

func (r *RoomRepository) FindOccupiedByRoom(ctx context.Context, date time.Time) (map[uuid.UUID][]queries.OccupiedSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT room_id, session, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM reservations
		WHERE loan_date = $1 AND status = $2`,
		date, booking.StatusApproved.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room occupancy", err)
	}
	defer rows.Close()

	occupied := make(map[uuid.UUID][]queries.OccupiedSlot)
	for rows.Next() {
		var roomID uuid.UUID
		var slot queries.OccupiedSlot
		if err := rows.Scan(&roomID, &slot.Session, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room occupancy", err)
		}
		occupied[roomID] = append(occupied[roomID], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room occupancy", err)
	}
	return occupied, nil
}

func collectRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		// code is NULL for office rooms.
		var code *string
		if err := rows.Scan(&view.ID, &view.Name, &view.Type, &code); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		view.Code = emptyIfNull(code)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}
