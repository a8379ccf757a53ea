package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/errs"
)

// ErrGeneratorRateLimited marks upstream throttling so callers can
// distinguish it from a hard failure.
var ErrGeneratorRateLimited = errs.New("text generator rate limited")

// TextGenerator produces a free-text completion for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AssistantAnswer struct {
	Answer   string `json:"answer"`
	Degraded bool   `json:"degraded"`
}

type AssistantQueries interface {
	Ask(ctx context.Context, prompt string, date *time.Time) (*AssistantAnswer, error)
}

type assistantQueriesImpl struct {
	rooms     RoomQueries
	generator TextGenerator
	clock     clock.Clock
}

func NewAssistantQueries(rooms RoomQueries, generator TextGenerator, c clock.Clock) AssistantQueries {
	return &assistantQueriesImpl{rooms: rooms, generator: generator, clock: c}
}

const degradedAnswer = "The availability assistant is busy right now. " +
	"Please check the room list for open slots, or try again in a moment."

// Ask builds an availability summary for the date and feeds it to the
// language model together with the visitor's question. Upstream failures
// degrade to a canned answer rather than an error.
func (q *assistantQueriesImpl) Ask(ctx context.Context, prompt string, date *time.Time) (*AssistantAnswer, error) {
	target := clock.Today(q.clock)
	if date != nil {
		target = *date
	}

	availability, err := q.rooms.Availability(ctx, target)
	if err != nil {
		return nil, err
	}

	full := fmt.Sprintf(
		"You are an assistant for a municipal office room-booking service.\n"+
			"Room availability for %s:\n%s\n"+
			"Answer the visitor's question using only this data. Question: %s",
		target.Format("2006-01-02"), summarize(availability), prompt,
	)

	answer, err := q.generator.Generate(ctx, full)
	if err != nil {
		return &AssistantAnswer{Answer: degradedAnswer, Degraded: true}, nil
	}
	return &AssistantAnswer{Answer: answer}, nil
}

func summarize(rooms []*RoomAvailability) string {
	var b strings.Builder
	for _, r := range rooms {
		if len(r.Occupied) == 0 {
			fmt.Fprintf(&b, "- %s: free all day\n", r.Name)
			continue
		}
		var slots []string
		for _, slot := range r.Occupied {
			switch {
			case slot.Session != nil:
				slots = append(slots, *slot.Session)
			case slot.StartTime != nil && slot.EndTime != nil:
				slots = append(slots, *slot.StartTime+"-"+*slot.EndTime)
			}
		}
		fmt.Fprintf(&b, "- %s: booked %s\n", r.Name, strings.Join(slots, ", "))
	}
	if b.Len() == 0 {
		return "(no rooms registered)"
	}
	return b.String()
}
