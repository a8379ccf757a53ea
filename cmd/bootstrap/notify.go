package bootstrap

import (
	"context"
	"log/slog"

	"kelurahan-booking/internal/infra/notify"
	"kelurahan-booking/internal/pkg/config"
	"kelurahan-booking/internal/usecase/commands"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewWhatsAppGateway,
		NewDecisionNotifier,
	),
)

func NewWhatsAppGateway(cfg config.Config) *notify.WhatsAppGateway {
	return notify.NewWhatsAppGateway(cfg.WhatsApp)
}

// NewDecisionNotifier publishes through NATS when a broker is configured,
// with the subscriber worker running in this process. Without a broker the
// gateway is invoked directly.
func NewDecisionNotifier(lc fx.Lifecycle, cfg config.Config, gateway *notify.WhatsAppGateway) (commands.DecisionNotifier, error) {
	if cfg.NATS.URL == "" {
		slog.Info("NATS not configured, decision notifications delivered in-process")
		return notify.NewDirectNotifier(gateway), nil
	}

	conn, err := nats.Connect(cfg.NATS.URL, nats.Name("kelurahan-booking"))
	if err != nil {
		return nil, err
	}

	worker := notify.NewDecisionWorker(conn, gateway)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return worker.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			if err := worker.Stop(); err != nil {
				slog.Warn("failed to drain decision subscription", "error", err)
			}
			conn.Close()
			return nil
		},
	})

	return notify.NewNATSNotifier(conn), nil
}
