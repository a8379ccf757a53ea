//go:build unit

package booking_test

import (
	"testing"
	"time"

	"kelurahan-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func validDraft(t *testing.T) booking.Draft {
	t.Helper()
	return booking.Draft{
		RoomID:       uuid.New(),
		LoanDate:     testNow.AddDate(0, 0, 1),
		Spec:         sessionSpec(t, booking.Session1),
		BorrowerName: "Budi Santoso",
		NationalID:   "3173051201900001",
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("valid draft produces pending reservation", func(t *testing.T) {
		res, err := booking.NewReservation(validDraft(t), testNow)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Status)
		assert.NotEqual(t, uuid.Nil, res.ID)
		assert.Nil(t, res.ValidatedAt)
		assert.Nil(t, res.ValidatedBy)
	})

	t.Run("request date defaults to today", func(t *testing.T) {
		res, err := booking.NewReservation(validDraft(t), testNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), res.RequestDate)
	})

	t.Run("loan date truncated to day", func(t *testing.T) {
		d := validDraft(t)
		d.LoanDate = time.Date(2025, 3, 11, 18, 45, 0, 0, time.UTC)
		res, err := booking.NewReservation(d, testNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), res.LoanDate)
	})

	t.Run("loan date today is allowed", func(t *testing.T) {
		d := validDraft(t)
		d.LoanDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		_, err := booking.NewReservation(d, testNow)
		assert.NoError(t, err)
	})

	t.Run("loan date yesterday is rejected", func(t *testing.T) {
		d := validDraft(t)
		d.LoanDate = testNow.AddDate(0, 0, -1)
		_, err := booking.NewReservation(d, testNow)
		assert.ErrorIs(t, err, booking.ErrLoanDateInPast)
	})

	tests := []struct {
		name    string
		mutate  func(d *booking.Draft)
		wantErr error
	}{
		{name: "missing room", mutate: func(d *booking.Draft) { d.RoomID = uuid.Nil }, wantErr: booking.ErrMissingRoom},
		{name: "missing loan date", mutate: func(d *booking.Draft) { d.LoanDate = time.Time{} }, wantErr: booking.ErrMissingLoanDate},
		{name: "missing borrower", mutate: func(d *booking.Draft) { d.BorrowerName = "" }, wantErr: booking.ErrMissingBorrower},
		{name: "national id too short", mutate: func(d *booking.Draft) { d.NationalID = "317305120190000" }, wantErr: booking.ErrInvalidNationalID},
		{name: "national id too long", mutate: func(d *booking.Draft) { d.NationalID = "31730512019000012" }, wantErr: booking.ErrInvalidNationalID},
		{name: "national id non-numeric", mutate: func(d *booking.Draft) { d.NationalID = "31730512O1900001" }, wantErr: booking.ErrInvalidNationalID},
		{name: "missing time spec", mutate: func(d *booking.Draft) { d.Spec = booking.TimeSpec{} }, wantErr: booking.ErrEmptyTimeSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft(t)
			tt.mutate(&d)
			_, err := booking.NewReservation(d, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReservationAmend(t *testing.T) {
	newStored := func(t *testing.T) *booking.Reservation {
		res, err := booking.NewReservation(validDraft(t), testNow)
		require.NoError(t, err)
		return res
	}

	t.Run("keeping the stored loan date skips the past check", func(t *testing.T) {
		res := newStored(t)
		later := testNow.AddDate(0, 0, 30)

		d := validDraft(t)
		d.RoomID = res.RoomID
		d.LoanDate = res.LoanDate
		d.BorrowerName = "Siti Rahma"

		require.NoError(t, res.Amend(d, later))
		assert.Equal(t, "Siti Rahma", res.BorrowerName)
	})

	t.Run("moving to a new past date is rejected", func(t *testing.T) {
		res := newStored(t)
		later := testNow.AddDate(0, 0, 30)

		d := validDraft(t)
		d.LoanDate = testNow.AddDate(0, 0, 5)

		assert.ErrorIs(t, res.Amend(d, later), booking.ErrLoanDateInPast)
	})

	t.Run("validation still applies", func(t *testing.T) {
		res := newStored(t)
		d := validDraft(t)
		d.NationalID = "short"
		assert.ErrorIs(t, res.Amend(d, testNow), booking.ErrInvalidNationalID)
	})
}

func TestReservationDecide(t *testing.T) {
	newPending := func(t *testing.T) *booking.Reservation {
		res, err := booking.NewReservation(validDraft(t), testNow)
		require.NoError(t, err)
		return res
	}

	t.Run("approve stamps audit metadata", func(t *testing.T) {
		res := newPending(t)
		deciderID := uuid.New()
		decidedAt := testNow.Add(time.Hour)

		require.NoError(t, res.Decide(booking.StatusApproved, deciderID, decidedAt))
		assert.Equal(t, booking.StatusApproved, res.Status)
		require.NotNil(t, res.ValidatedAt)
		assert.Equal(t, decidedAt, *res.ValidatedAt)
		require.NotNil(t, res.ValidatedBy)
		assert.Equal(t, deciderID, *res.ValidatedBy)
	})

	t.Run("reject", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Decide(booking.StatusRejected, uuid.New(), testNow))
		assert.Equal(t, booking.StatusRejected, res.Status)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Decide(booking.StatusApproved, uuid.New(), testNow))
		assert.ErrorIs(t, res.Decide(booking.StatusRejected, uuid.New(), testNow), booking.ErrAlreadyDecided)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Decide(booking.StatusRejected, uuid.New(), testNow))
		assert.ErrorIs(t, res.Decide(booking.StatusApproved, uuid.New(), testNow), booking.ErrAlreadyDecided)
	})
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  booking.Decision
		ok    bool
	}{
		{input: "APPROVED", want: booking.StatusApproved, ok: true},
		{input: "REJECTED", want: booking.StatusRejected, ok: true},
		{input: "PENDING", ok: false},
		{input: "approved", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, ok := booking.ParseDecision(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, booking.StatusPending.Blocks())
	assert.True(t, booking.StatusApproved.Blocks())
	assert.False(t, booking.StatusRejected.Blocks())
}
