package commands

import (
	"context"
	"time"

	"kelurahan-booking/internal/domain/guest"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGuestNotFound = errs.New("guest not found")

type GuestInput struct {
	VisitDate time.Time
	Name      string
	Address   string
	Phone     string
	Purpose   string
}

type GuestCommands interface {
	Create(ctx context.Context, in GuestInput) (*queries.GuestView, error)
	Update(ctx context.Context, id uuid.UUID, in GuestInput) (*queries.GuestView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type guestCommandsImpl struct {
	guestRepo    GuestRepository
	guestQueries queries.GuestQueries
	db           *pgxpool.Pool
}

func NewGuestCommands(guestRepo GuestRepository, guestQueries queries.GuestQueries, db *pgxpool.Pool) GuestCommands {
	return &guestCommandsImpl{
		guestRepo:    guestRepo,
		guestQueries: guestQueries,
		db:           db,
	}
}

func (c *guestCommandsImpl) Create(ctx context.Context, in GuestInput) (*queries.GuestView, error) {
	entity, err := guest.New(guest.Draft{
		VisitDate: in.VisitDate,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Purpose:   in.Purpose,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if _, err := c.guestRepo.Create(ctx, c.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.guestQueries.GetByID(ctx, entity.ID)
}

func (c *guestCommandsImpl) Update(ctx context.Context, id uuid.UUID, in GuestInput) (*queries.GuestView, error) {
	entity, err := c.guestRepo.FindByID(ctx, c.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	draft := guest.Draft{
		VisitDate: in.VisitDate,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Purpose:   in.Purpose,
	}
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity.VisitDate = draft.VisitDate
	entity.Name = guest.FormatName(draft.Name)
	entity.Address = draft.Address
	entity.Phone = draft.Phone
	entity.Purpose = draft.Purpose

	if err := c.guestRepo.Update(ctx, c.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.guestQueries.GetByID(ctx, entity.ID)
}

// Delete removes the entry and compacts the per-date sequence numbers so
// the logbook stays gapless.
func (c *guestCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	visitDate, err := c.guestRepo.Delete(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrGuestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.guestRepo.Renumber(ctx, tx, visitDate); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
