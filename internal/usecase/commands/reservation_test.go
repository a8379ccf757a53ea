//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/usecase/commands"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ---- stubs ----

type stubReservationRepo struct {
	byID            map[uuid.UUID]*booking.Reservation
	decisionUpdates []*booking.Reservation
	deleted         []uuid.UUID
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{byID: make(map[uuid.UUID]*booking.Reservation)}
}

func (s *stubReservationRepo) Create(_ context.Context, _ infra.DBTX, r *booking.Reservation) error {
	s.byID[r.ID] = r
	return nil
}

func (s *stubReservationRepo) Update(_ context.Context, _ infra.DBTX, r *booking.Reservation) error {
	s.byID[r.ID] = r
	return nil
}

func (s *stubReservationRepo) UpdateDecision(_ context.Context, _ infra.DBTX, r *booking.Reservation) error {
	s.decisionUpdates = append(s.decisionUpdates, r)
	return nil
}

func (s *stubReservationRepo) Delete(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubReservationRepo) FindByID(_ context.Context, _ infra.DBTX, id uuid.UUID) (*booking.Reservation, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	clone := *r
	return &clone, nil
}

func (s *stubReservationRepo) FindBlockingSpecs(_ context.Context, _ infra.DBTX, _ uuid.UUID, _ time.Time, _ *uuid.UUID) ([]booking.TimeSpec, error) {
	return nil, nil
}

func (s *stubReservationRepo) AcquireSlotLock(_ context.Context, _ infra.DBTX, _ uuid.UUID, _ time.Time) error {
	return nil
}

type stubRoomReader struct {
	rooms map[uuid.UUID]*queries.RoomView
}

func (s *stubRoomReader) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return room, nil
}

type stubReservationQueries struct {
	views map[uuid.UUID]*queries.ReservationView
}

func (s *stubReservationQueries) List(_ context.Context) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (s *stubReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return &queries.ReservationView{ID: id}, nil
}

func (s *stubReservationQueries) CheckOccupied(_ context.Context, _ uuid.UUID, _ time.Time) ([]queries.OccupiedSlot, error) {
	return []queries.OccupiedSlot{}, nil
}

type stubNotifier struct {
	events chan commands.DecisionEvent
}

func (s *stubNotifier) PublishDecision(_ context.Context, ev commands.DecisionEvent) error {
	s.events <- ev
	return nil
}

// ---- suite ----

type ReservationCommandsTestSuite struct {
	suite.Suite
	repo     *stubReservationRepo
	rooms    *stubRoomReader
	views    *stubReservationQueries
	notifier *stubNotifier
	clock    *clock.MockClock
	commands commands.ReservationCommands

	roomID uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.repo = newStubReservationRepo()
	s.roomID = uuid.New()
	s.rooms = &stubRoomReader{rooms: map[uuid.UUID]*queries.RoomView{
		s.roomID: {ID: s.roomID, Name: "Aula Utama", Type: "KANTOR"},
	}}
	s.views = &stubReservationQueries{views: make(map[uuid.UUID]*queries.ReservationView)}
	s.notifier = &stubNotifier{events: make(chan commands.DecisionEvent, 1)}
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	s.commands = commands.NewReservationCommands(s.repo, s.rooms, s.views, s.notifier, nil, s.clock)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) pendingReservation() *booking.Reservation {
	session := booking.Session1
	spec, err := booking.NewTimeSpec(&session, nil, nil)
	s.Require().NoError(err)

	res, err := booking.NewReservation(booking.Draft{
		RoomID:       s.roomID,
		LoanDate:     s.clock.Now().AddDate(0, 0, 3),
		Spec:         spec,
		BorrowerName: "Budi Santoso",
		NationalID:   "3173051201900001",
		Phone:        "081234567890",
	}, s.clock.Now())
	s.Require().NoError(err)

	s.repo.byID[res.ID] = res
	return res
}

func strptr(v string) *string { return &v }

func (s *ReservationCommandsTestSuite) validInput() commands.ReservationInput {
	return commands.ReservationInput{
		RoomID:       s.roomID,
		LoanDate:     s.clock.Now().AddDate(0, 0, 3),
		Session:      strptr("SESSION_1"),
		BorrowerName: "Budi Santoso",
		NationalID:   "3173051201900001",
	}
}

func (s *ReservationCommandsTestSuite) TestCreateValidation() {
	s.Run("unknown session is a validation error", func() {
		in := s.validInput()
		in.Session = strptr("SESSION_9")
		_, err := s.commands.Create(context.Background(), in)
		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("malformed start time is a validation error", func() {
		in := s.validInput()
		in.Session = nil
		in.StartTime = strptr("25:00")
		in.EndTime = strptr("11:00")
		_, err := s.commands.Create(context.Background(), in)
		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("short national id is a validation error", func() {
		in := s.validInput()
		in.NationalID = "123"
		_, err := s.commands.Create(context.Background(), in)
		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("past loan date is a validation error", func() {
		in := s.validInput()
		in.LoanDate = s.clock.Now().AddDate(0, 0, -1)
		_, err := s.commands.Create(context.Background(), in)
		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("unknown room", func() {
		in := s.validInput()
		in.RoomID = uuid.New()
		_, err := s.commands.Create(context.Background(), in)
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestDecide() {
	s.Run("approve updates status and publishes notification", func() {
		res := s.pendingReservation()
		deciderID := uuid.New()

		view, err := s.commands.Decide(context.Background(), res.ID, commands.DecideInput{
			Decision:  "APPROVED",
			DeciderID: deciderID,
		})
		s.Require().NoError(err)
		s.Equal(res.ID, view.ID)

		s.Require().Len(s.repo.decisionUpdates, 1)
		updated := s.repo.decisionUpdates[0]
		s.Equal(booking.StatusApproved, updated.Status)
		s.Require().NotNil(updated.ValidatedBy)
		s.Equal(deciderID, *updated.ValidatedBy)

		select {
		case ev := <-s.notifier.events:
			s.Equal(res.ID, ev.ReservationID)
			s.Equal("Budi Santoso", ev.Borrower)
			s.Equal("Aula Utama", ev.RoomName)
			s.Equal("081234567890", ev.Phone)
			s.Equal("APPROVED", ev.Decision)
			s.Equal("Session 1 (09:00 - 12:00)", ev.SlotLabel)
		case <-time.After(2 * time.Second):
			s.Fail("expected a decision event")
		}
	})

	s.Run("invalid decision string", func() {
		res := s.pendingReservation()
		_, err := s.commands.Decide(context.Background(), res.ID, commands.DecideInput{Decision: "MAYBE"})
		s.ErrorIs(err, commands.ErrInvalidDecision)
	})

	s.Run("unknown reservation", func() {
		_, err := s.commands.Decide(context.Background(), uuid.New(), commands.DecideInput{Decision: "APPROVED"})
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("re-deciding is refused", func() {
		res := s.pendingReservation()
		_, err := s.commands.Decide(context.Background(), res.ID, commands.DecideInput{Decision: "REJECTED"})
		s.Require().NoError(err)
		<-s.notifier.events

		// The stub returns the stored entity, now terminal.
		s.repo.byID[res.ID] = s.repo.decisionUpdates[0]
		_, err = s.commands.Decide(context.Background(), res.ID, commands.DecideInput{Decision: "APPROVED"})
		s.ErrorIs(err, commands.ErrAlreadyDecided)
	})
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	s.Run("removes an existing reservation", func() {
		res := s.pendingReservation()
		s.Require().NoError(s.commands.Delete(context.Background(), res.ID))
		s.Contains(s.repo.deleted, res.ID)
	})

	s.Run("unknown reservation", func() {
		err := s.commands.Delete(context.Background(), uuid.New())
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}
