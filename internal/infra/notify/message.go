package notify

import (
	"fmt"

	"kelurahan-booking/internal/domain/booking"
	"kelurahan-booking/internal/usecase/commands"
)

// DecisionMessage formats the WhatsApp text sent to a borrower once
// their reservation has been approved or rejected.
func DecisionMessage(ev commands.DecisionEvent) string {
	verdict := "REJECTED"
	if ev.Decision == booking.StatusApproved.String() {
		verdict = "APPROVED"
	}
	return fmt.Sprintf(
		"Hello %s,\n\nYour room reservation has been *%s*.\n\nRoom: %s\nDate: %s\nTime: %s\n\nThank you.",
		ev.Borrower, verdict, ev.RoomName, ev.LoanDate.Format("02 January 2006"), ev.SlotLabel,
	)
}
