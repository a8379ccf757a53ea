package commands

import (
	"context"
	"time"

	"kelurahan-booking/internal/domain/admin"
	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/domain/guest"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	Create(ctx context.Context, db infra.DBTX, r *booking.Reservation) error
	Update(ctx context.Context, db infra.DBTX, r *booking.Reservation) error
	UpdateDecision(ctx context.Context, db infra.DBTX, r *booking.Reservation) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*booking.Reservation, error)
	// FindBlockingSpecs returns the time specs of every non-rejected
	// reservation for the room and loan date, minus excludeID when set.
	FindBlockingSpecs(ctx context.Context, db infra.DBTX, roomID uuid.UUID, loanDate time.Time, excludeID *uuid.UUID) ([]booking.TimeSpec, error)
	// AcquireSlotLock serializes concurrent submissions for the same room
	// and date within the surrounding transaction.
	AcquireSlotLock(ctx context.Context, db infra.DBTX, roomID uuid.UUID, loanDate time.Time) error
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error)
}

type GuestRepository interface {
	Create(ctx context.Context, db infra.DBTX, g *guest.Guest) (int, error)
	Update(ctx context.Context, db infra.DBTX, g *guest.Guest) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) (time.Time, error)
	Renumber(ctx context.Context, db infra.DBTX, visitDate time.Time) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*guest.Guest, error)
}

type AdminRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, a *admin.Admin) error
	FindByIdentifier(ctx context.Context, identifier string, byEmail bool) (*admin.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	RecordLogin(ctx context.Context, adminID uuid.UUID, ip, userAgent string) error
	CloseOpenLogins(ctx context.Context, adminID uuid.UUID) error
}

type OTPRecord struct {
	ID       uuid.UUID
	Email    string
	Code     string
	ExpireAt time.Time
}

type OTPRepository interface {
	Insert(ctx context.Context, email, code string, expireAt time.Time) error
	FindLatest(ctx context.Context, email, code string) (*OTPRecord, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
}

// DecisionEvent carries everything the notification pipeline needs to
// compose and deliver the WhatsApp message.
type DecisionEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Borrower      string    `json:"borrower"`
	RoomName      string    `json:"room_name"`
	Phone         string    `json:"phone"`
	LoanDate      time.Time `json:"loan_date"`
	SlotLabel     string    `json:"slot_label"`
	Decision      string    `json:"decision"`
}

// DecisionNotifier delivery is best-effort: implementations log failures,
// callers never treat them as the operation's error.
type DecisionNotifier interface {
	PublishDecision(ctx context.Context, ev DecisionEvent) error
}

type OTPMailer interface {
	SendOTP(ctx context.Context, email, code string) error
}
