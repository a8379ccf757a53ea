//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubRoomViewRepo struct {
	rooms    []*queries.RoomView
	occupied map[uuid.UUID][]queries.OccupiedSlot
}

func (s *stubRoomViewRepo) FindAll(_ context.Context, _ queries.RoomFilter) ([]*queries.RoomView, error) {
	return s.rooms, nil
}

func (s *stubRoomViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errs.New("room not found")
}

func (s *stubRoomViewRepo) FindWithoutApprovedReservation(_ context.Context, _ time.Time) ([]*queries.RoomView, error) {
	return s.rooms, nil
}

func (s *stubRoomViewRepo) FindOccupiedByRoom(_ context.Context, _ time.Time) (map[uuid.UUID][]queries.OccupiedSlot, error) {
	return s.occupied, nil
}

type stubGenerator struct {
	prompts []string
	answer  string
	err     error
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

type AssistantQueriesTestSuite struct {
	suite.Suite
	repo      *stubRoomViewRepo
	generator *stubGenerator
	clock     *clock.MockClock
	assistant queries.AssistantQueries

	aulaID uuid.UUID
}

func (s *AssistantQueriesTestSuite) SetupTest() {
	s.aulaID = uuid.New()
	session := "SESSION_1"
	s.repo = &stubRoomViewRepo{
		rooms: []*queries.RoomView{
			{ID: s.aulaID, Name: "Aula Utama", Type: "KANTOR"},
			{ID: uuid.New(), Name: "Ruang Rapat", Type: "KANTOR"},
		},
		occupied: map[uuid.UUID][]queries.OccupiedSlot{
			s.aulaID: {{Session: &session}},
		},
	}
	s.generator = &stubGenerator{answer: "Ruang Rapat is free all day."}
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	rooms := queries.NewRoomQueries(s.repo)
	s.assistant = queries.NewAssistantQueries(rooms, s.generator, s.clock)
}

func TestAssistantQueriesSuite(t *testing.T) {
	suite.Run(t, new(AssistantQueriesTestSuite))
}

func (s *AssistantQueriesTestSuite) TestAsk() {
	s.Run("feeds availability and question to the generator", func() {
		answer, err := s.assistant.Ask(context.Background(), "Is any room free today?", nil)
		s.Require().NoError(err)
		s.Equal("Ruang Rapat is free all day.", answer.Answer)
		s.False(answer.Degraded)

		s.Require().Len(s.generator.prompts, 1)
		prompt := s.generator.prompts[0]
		s.Contains(prompt, "2025-03-10")
		s.Contains(prompt, "Aula Utama: booked SESSION_1")
		s.Contains(prompt, "Ruang Rapat: free all day")
		s.Contains(prompt, "Is any room free today?")
	})

	s.Run("explicit date overrides the clock", func() {
		date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		_, err := s.assistant.Ask(context.Background(), "And next month?", &date)
		s.Require().NoError(err)
		s.Contains(s.generator.prompts[len(s.generator.prompts)-1], "2025-04-01")
	})

	s.Run("generator failure degrades to a canned answer", func() {
		s.generator.err = errs.New("upstream timeout")
		answer, err := s.assistant.Ask(context.Background(), "Is any room free?", nil)
		s.Require().NoError(err)
		s.True(answer.Degraded)
		s.NotEmpty(answer.Answer)
	})

	s.Run("rate limiting degrades the same way", func() {
		s.generator.err = queries.ErrGeneratorRateLimited
		answer, err := s.assistant.Ask(context.Background(), "Is any room free?", nil)
		s.Require().NoError(err)
		s.True(answer.Degraded)
	})
}
