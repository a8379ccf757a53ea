package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RoomView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
	Code string    `json:"code"`
}

// RoomFilter narrows the registry listing: office rooms, or community
// rooms for one site code.
type RoomFilter struct {
	Mode string
	Code string
}

const (
	RoomModeOffice    = "office"
	RoomModeCommunity = "community"
)

// RoomAvailability summarizes one room's bookable windows for a date; the
// assistant endpoint feeds this to the language model.
type RoomAvailability struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Occupied []OccupiedSlot
}

type RoomQueries interface {
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListAvailableOn(ctx context.Context, date time.Time) ([]*RoomView, error)
	Availability(ctx context.Context, date time.Time) ([]*RoomAvailability, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindWithoutApprovedReservation(ctx context.Context, date time.Time) ([]*RoomView, error)
	FindOccupiedByRoom(ctx context.Context, date time.Time) (map[uuid.UUID][]OccupiedSlot, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	return q.repo.FindAll(ctx, filter)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *roomQueriesImpl) ListAvailableOn(ctx context.Context, date time.Time) ([]*RoomView, error) {
	return q.repo.FindWithoutApprovedReservation(ctx, date)
}

func (q *roomQueriesImpl) Availability(ctx context.Context, date time.Time) ([]*RoomAvailability, error) {
	rooms, err := q.repo.FindAll(ctx, RoomFilter{})
	if err != nil {
		return nil, err
	}

	occupied, err := q.repo.FindOccupiedByRoom(ctx, date)
	if err != nil {
		return nil, err
	}

	result := make([]*RoomAvailability, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, &RoomAvailability{
			ID:       r.ID,
			Name:     r.Name,
			Type:     r.Type,
			Occupied: occupied[r.ID],
		})
	}
	return result, nil
}
