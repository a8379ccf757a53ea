//go:build unit

package notify_test

import (
	"testing"
	"time"

	"kelurahan-booking/internal/infra/notify"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecisionMessage(t *testing.T) {
	ev := commands.DecisionEvent{
		ReservationID: uuid.New(),
		Borrower:      "Budi Santoso",
		RoomName:      "Aula Utama",
		Phone:         "081234567890",
		LoanDate:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		SlotLabel:     "Session 1 (09:00 - 12:00)",
	}

	t.Run("approved", func(t *testing.T) {
		ev.Decision = "APPROVED"
		msg := notify.DecisionMessage(ev)
		assert.Contains(t, msg, "Budi Santoso")
		assert.Contains(t, msg, "*APPROVED*")
		assert.Contains(t, msg, "Aula Utama")
		assert.Contains(t, msg, "15 March 2025")
		assert.Contains(t, msg, "Session 1 (09:00 - 12:00)")
	})

	t.Run("rejected", func(t *testing.T) {
		ev.Decision = "REJECTED"
		msg := notify.DecisionMessage(ev)
		assert.Contains(t, msg, "*REJECTED*")
		assert.NotContains(t, msg, "*APPROVED*")
	})
}
