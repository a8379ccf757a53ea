package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type GuestView struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	VisitDate time.Time `json:"visit_date"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestQueries interface {
	List(ctx context.Context) ([]*GuestView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
}

type GuestViewRepo interface {
	FindAll(ctx context.Context) ([]*GuestView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
}

type guestQueriesImpl struct {
	repo GuestViewRepo
}

func NewGuestQueries(repo GuestViewRepo) GuestQueries {
	return &guestQueriesImpl{repo: repo}
}

func (q *guestQueriesImpl) List(ctx context.Context) ([]*GuestView, error) {
	return q.repo.FindAll(ctx)
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	return q.repo.FindViewByID(ctx, id)
}
