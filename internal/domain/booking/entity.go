package booking

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNationalID = errors.New("national id must be exactly 16 digits")
	ErrMissingBorrower   = errors.New("borrower name is required")
	ErrMissingRoom       = errors.New("room id is required")
	ErrMissingLoanDate   = errors.New("loan date is required")
	ErrLoanDateInPast    = errors.New("loan date must not be in the past")
	ErrAlreadyDecided    = errors.New("reservation has already been decided")
)

var nationalIDPattern = regexp.MustCompile(`^[0-9]{16}$`)

func ValidateNationalID(nik string) error {
	if !nationalIDPattern.MatchString(nik) {
		return ErrInvalidNationalID
	}
	return nil
}

// Reservation is a room-loan request. requestDate records when it was
// filed; only loanDate participates in conflict and validity checks.
type Reservation struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	RequestDate  time.Time
	LoanDate     time.Time
	Spec         TimeSpec
	BorrowerName string
	Position     string
	NationalID   string
	Address      string
	Phone        string
	ItemsBrought string
	Purpose      string
	Status       Status
	ValidatedAt  *time.Time
	ValidatedBy  *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Draft struct {
	RoomID       uuid.UUID
	RequestDate  time.Time
	LoanDate     time.Time
	Spec         TimeSpec
	BorrowerName string
	Position     string
	NationalID   string
	Address      string
	Phone        string
	ItemsBrought string
	Purpose      string
}

// truncateToDay drops the clock part so date comparisons happen at the
// server's local day boundary.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (d Draft) validate(now time.Time, skipPastCheck bool) error {
	if d.RoomID == uuid.Nil {
		return ErrMissingRoom
	}
	if d.LoanDate.IsZero() {
		return ErrMissingLoanDate
	}
	if d.BorrowerName == "" {
		return ErrMissingBorrower
	}
	if err := ValidateNationalID(d.NationalID); err != nil {
		return err
	}
	if d.Spec.IsZero() {
		return ErrEmptyTimeSpec
	}
	if !skipPastCheck && truncateToDay(d.LoanDate).Before(truncateToDay(now)) {
		return ErrLoanDateInPast
	}
	return nil
}

// NewReservation validates a draft and produces a pending reservation.
func NewReservation(d Draft, now time.Time) (*Reservation, error) {
	if err := d.validate(now, false); err != nil {
		return nil, err
	}

	requestDate := d.RequestDate
	if requestDate.IsZero() {
		requestDate = truncateToDay(now)
	}

	return &Reservation{
		ID:           uuid.New(),
		RoomID:       d.RoomID,
		RequestDate:  requestDate,
		LoanDate:     truncateToDay(d.LoanDate),
		Spec:         d.Spec,
		BorrowerName: d.BorrowerName,
		Position:     d.Position,
		NationalID:   d.NationalID,
		Address:      d.Address,
		Phone:        d.Phone,
		ItemsBrought: d.ItemsBrought,
		Purpose:      d.Purpose,
		Status:       StatusPending,
	}, nil
}

// Amend re-validates the draft against the stored record. Amendments that
// keep the same loan date are exempt from the past-date check even if that
// date has since passed.
func (r *Reservation) Amend(d Draft, now time.Time) error {
	sameDate := truncateToDay(d.LoanDate).Equal(truncateToDay(r.LoanDate))
	if err := d.validate(now, sameDate); err != nil {
		return err
	}

	r.RoomID = d.RoomID
	if !d.RequestDate.IsZero() {
		r.RequestDate = d.RequestDate
	}
	r.LoanDate = truncateToDay(d.LoanDate)
	r.Spec = d.Spec
	r.BorrowerName = d.BorrowerName
	r.Position = d.Position
	r.NationalID = d.NationalID
	r.Address = d.Address
	r.Phone = d.Phone
	r.ItemsBrought = d.ItemsBrought
	r.Purpose = d.Purpose
	return nil
}

// Decide moves a pending reservation to a terminal state and stamps the
// audit metadata. Approved and Rejected cannot be re-decided.
func (r *Reservation) Decide(decision Decision, deciderID uuid.UUID, now time.Time) error {
	if r.Status.IsDecided() {
		return ErrAlreadyDecided
	}
	if !decision.IsDecided() {
		return errors.New("decision must be APPROVED or REJECTED")
	}

	r.Status = decision
	r.ValidatedAt = &now
	if deciderID != uuid.Nil {
		id := deciderID
		r.ValidatedBy = &id
	}
	return nil
}
