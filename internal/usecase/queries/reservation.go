package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for the read side)
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	RoomType     string     `json:"room_type"`
	RequestDate  time.Time  `json:"request_date"`
	LoanDate     time.Time  `json:"loan_date"`
	Session      *string    `json:"session,omitempty"`
	StartTime    *string    `json:"start_time,omitempty"`
	EndTime      *string    `json:"end_time,omitempty"`
	BorrowerName string     `json:"borrower_name"`
	Position     *string    `json:"position,omitempty"`
	NationalID   string     `json:"national_id"`
	Address      *string    `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	ItemsBrought *string    `json:"items_brought,omitempty"`
	Purpose      *string    `json:"purpose,omitempty"`
	Status       string     `json:"status"`
	ValidatedAt  *time.Time `json:"validated_at,omitempty"`
	ValidatedBy  *uuid.UUID `json:"validated_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// OccupiedSlot is what the availability check endpoint returns: one entry
// per blocking reservation, in whichever time representation it holds.
type OccupiedSlot struct {
	Session   *string `json:"session,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	CheckOccupied(ctx context.Context, roomID uuid.UUID, date time.Time) ([]OccupiedSlot, error)
}

type ReservationViewRepo interface {
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindOccupied(ctx context.Context, roomID uuid.UUID, date time.Time) ([]OccupiedSlot, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	return q.repo.FindAll(ctx)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindViewByID(ctx, id)
}

func (q *reservationQueriesImpl) CheckOccupied(ctx context.Context, roomID uuid.UUID, date time.Time) ([]OccupiedSlot, error) {
	return q.repo.FindOccupied(ctx, roomID, date)
}
