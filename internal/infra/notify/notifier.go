package notify

import (
	"context"
	"log/slog"

	"kelurahan-booking/internal/usecase/commands"
)

// DirectNotifier formats and sends the decision message in-process.
// Used when no broker is configured.
type DirectNotifier struct {
	gateway *WhatsAppGateway
}

func NewDirectNotifier(gateway *WhatsAppGateway) *DirectNotifier {
	return &DirectNotifier{gateway: gateway}
}

var _ commands.DecisionNotifier = (*DirectNotifier)(nil)

func (n *DirectNotifier) PublishDecision(ctx context.Context, ev commands.DecisionEvent) error {
	if ev.Phone == "" {
		slog.Info("decision notification skipped, borrower has no phone",
			"reservation_id", ev.ReservationID)
		return nil
	}
	if err := n.gateway.Send(ctx, ev.Phone, DecisionMessage(ev)); err != nil {
		return err
	}
	slog.Info("decision notification sent",
		"reservation_id", ev.ReservationID, "decision", ev.Decision)
	return nil
}
