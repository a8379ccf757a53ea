package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/nats-io/nats.go"
)

const decisionSubject = "booking.reservation.decided"

// NATSNotifier publishes decision events to the broker; a worker process
// (or this process's subscriber) performs the actual delivery.
type NATSNotifier struct {
	conn *nats.Conn
}

func NewNATSNotifier(conn *nats.Conn) *NATSNotifier {
	return &NATSNotifier{conn: conn}
}

var _ commands.DecisionNotifier = (*NATSNotifier)(nil)

func (n *NATSNotifier) PublishDecision(_ context.Context, ev commands.DecisionEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode decision event")
	}
	if err := n.conn.Publish(decisionSubject, payload); err != nil {
		return errs.Wrap(err, "failed to publish decision event")
	}
	return nil
}

// DecisionWorker consumes decision events and pushes them through the
// WhatsApp gateway. Delivery is at-most-once; failures are logged only.
type DecisionWorker struct {
	conn     *nats.Conn
	delegate *DirectNotifier
	sub      *nats.Subscription
}

func NewDecisionWorker(conn *nats.Conn, gateway *WhatsAppGateway) *DecisionWorker {
	return &DecisionWorker{
		conn:     conn,
		delegate: NewDirectNotifier(gateway),
	}
}

func (w *DecisionWorker) Start(ctx context.Context) error {
	sub, err := w.conn.QueueSubscribe(decisionSubject, "decision-workers", func(msg *nats.Msg) {
		var ev commands.DecisionEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Error("discarding malformed decision event", "error", err)
			return
		}
		if err := w.delegate.PublishDecision(ctx, ev); err != nil {
			slog.Warn("decision notification delivery failed",
				"reservation_id", ev.ReservationID, "error", err)
		}
	})
	if err != nil {
		return errs.Wrap(err, "failed to subscribe to decision events")
	}
	w.sub = sub
	return nil
}

func (w *DecisionWorker) Stop() error {
	if w.sub == nil {
		return nil
	}
	return w.sub.Drain()
}
