package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomNotFound            = errs.New("room not found")
	ErrValidation              = errs.New("validation failed")
	ErrSessionTaken            = errs.New("session already booked")
	ErrTimeOverlap             = errs.New("time overlap with another reservation")
	ErrInvalidDecision         = errs.New("decision must be APPROVED or REJECTED")
	ErrAlreadyDecided          = errs.New("reservation already decided")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationInput is the raw, unnormalized request. Session takes
// precedence over the interval fields when both are supplied.
type ReservationInput struct {
	RoomID       uuid.UUID
	RequestDate  *time.Time
	LoanDate     time.Time
	Session      *string
	StartTime    *string
	EndTime      *string
	BorrowerName string
	Position     string
	NationalID   string
	Address      string
	Phone        string
	ItemsBrought string
	Purpose      string
}

type DecideInput struct {
	Decision  string
	DeciderID uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, in ReservationInput) (*queries.ReservationView, error)
	Amend(ctx context.Context, id uuid.UUID, in ReservationInput) (*queries.ReservationView, error)
	Decide(ctx context.Context, id uuid.UUID, in DecideInput) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	roomReader         RoomReader
	reservationQueries queries.ReservationQueries
	notifier           DecisionNotifier
	db                 *pgxpool.Pool
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	roomReader RoomReader,
	reservationQueries queries.ReservationQueries,
	notifier DecisionNotifier,
	db *pgxpool.Pool,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		roomReader:         roomReader,
		reservationQueries: reservationQueries,
		notifier:           notifier,
		db:                 db,
		clock:              clk,
	}
}

func (c *reservationCommandsImpl) toDraft(in ReservationInput) (booking.Draft, error) {
	var session *booking.Session
	if in.Session != nil && *in.Session != "" {
		s, err := booking.ParseSession(*in.Session)
		if err != nil {
			return booking.Draft{}, errs.Mark(err, ErrValidation)
		}
		session = &s
	}

	var start, end *booking.TimeOfDay
	if in.StartTime != nil && *in.StartTime != "" {
		t, err := booking.ParseTimeOfDay(*in.StartTime)
		if err != nil {
			return booking.Draft{}, errs.Mark(err, ErrValidation)
		}
		start = &t
	}
	if in.EndTime != nil && *in.EndTime != "" {
		t, err := booking.ParseTimeOfDay(*in.EndTime)
		if err != nil {
			return booking.Draft{}, errs.Mark(err, ErrValidation)
		}
		end = &t
	}

	spec, err := booking.NewTimeSpec(session, start, end)
	if err != nil {
		return booking.Draft{}, errs.Mark(err, ErrValidation)
	}

	draft := booking.Draft{
		RoomID:       in.RoomID,
		LoanDate:     in.LoanDate,
		Spec:         spec,
		BorrowerName: in.BorrowerName,
		Position:     in.Position,
		NationalID:   in.NationalID,
		Address:      in.Address,
		Phone:        in.Phone,
		ItemsBrought: in.ItemsBrought,
		Purpose:      in.Purpose,
	}
	if in.RequestDate != nil {
		draft.RequestDate = *in.RequestDate
	}
	return draft, nil
}

func (c *reservationCommandsImpl) ensureRoomExists(ctx context.Context, roomID uuid.UUID) error {
	if _, err := c.roomReader.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func conflictError(reason booking.ConflictReason) error {
	switch reason {
	case booking.ConflictSessionTaken:
		return ErrSessionTaken
	case booking.ConflictTimeOverlap:
		return ErrTimeOverlap
	default:
		return nil
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in ReservationInput) (*queries.ReservationView, error) {
	draft, err := c.toDraft(in)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewReservation(draft, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.ensureRoomExists(ctx, entity.RoomID); err != nil {
		return nil, err
	}

	// Conflict check and insert share one transaction, serialized per
	// room and loan date, so two concurrent submissions cannot both pass
	// the check.
	err = c.withSlotLock(ctx, entity.RoomID, entity.LoanDate, func(tx pgxTx) error {
		specs, err := c.reservationRepo.FindBlockingSpecs(ctx, tx, entity.RoomID, entity.LoanDate, nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflictErr := conflictError(booking.DetectConflict(entity.Spec, specs)); conflictErr != nil {
			return conflictErr
		}
		return c.reservationRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, entity.ID)
}

func (c *reservationCommandsImpl) Amend(ctx context.Context, id uuid.UUID, in ReservationInput) (*queries.ReservationView, error) {
	entity, err := c.reservationRepo.FindByID(ctx, c.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	draft, err := c.toDraft(in)
	if err != nil {
		return nil, err
	}

	if err := entity.Amend(draft, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.ensureRoomExists(ctx, entity.RoomID); err != nil {
		return nil, err
	}

	excludeID := entity.ID
	err = c.withSlotLock(ctx, entity.RoomID, entity.LoanDate, func(tx pgxTx) error {
		specs, err := c.reservationRepo.FindBlockingSpecs(ctx, tx, entity.RoomID, entity.LoanDate, &excludeID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflictErr := conflictError(booking.DetectConflict(entity.Spec, specs)); conflictErr != nil {
			return conflictErr
		}
		return c.reservationRepo.Update(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, entity.ID)
}

func (c *reservationCommandsImpl) Decide(ctx context.Context, id uuid.UUID, in DecideInput) (*queries.ReservationView, error) {
	decision, ok := booking.ParseDecision(in.Decision)
	if !ok {
		return nil, ErrInvalidDecision
	}

	entity, err := c.reservationRepo.FindByID(ctx, c.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	roomView, err := c.roomReader.FindByID(ctx, entity.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Decide(decision, in.DeciderID, c.clock.Now()); err != nil {
		if errors.Is(err, booking.ErrAlreadyDecided) {
			return nil, ErrAlreadyDecided
		}
		return nil, errs.Mark(err, ErrInvalidDecision)
	}

	if err := c.reservationRepo.UpdateDecision(ctx, c.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Fire-and-forget: the transition's success is reported regardless of
	// notification delivery.
	ev := DecisionEvent{
		ReservationID: entity.ID,
		Borrower:      entity.BorrowerName,
		RoomName:      roomView.Name,
		Phone:         entity.Phone,
		LoanDate:      entity.LoanDate,
		SlotLabel:     entity.Spec.Describe(),
		Decision:      decision.String(),
	}
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.notifier.PublishDecision(notifyCtx, ev); err != nil {
			slog.Warn("decision notification failed",
				"reservation_id", ev.ReservationID, "error", err)
		}
	}()

	return c.reservationQueries.GetByID(ctx, entity.ID)
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.reservationRepo.Delete(ctx, c.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
