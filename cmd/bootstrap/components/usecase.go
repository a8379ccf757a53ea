package components

import (
	assistant_impl "kelurahan-booking/internal/infra/assistant"
	"kelurahan-booking/internal/infra/mailer"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/pkg/config"
	"kelurahan-booking/internal/usecase/commands"
	"kelurahan-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewGeminiClient,
		fx.As(new(queries.TextGenerator)),
	),
	fx.Annotate(
		NewSMTPMailer,
		fx.As(new(commands.OTPMailer)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewAssistantQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewGuestCommands,
		commands.NewAuthCommands,
		commands.NewPasswordResetCommands,
	),
)

func NewGeminiClient(cfg config.Config) *assistant_impl.GeminiClient {
	return assistant_impl.NewGeminiClient(cfg.Assistant)
}

func NewSMTPMailer(cfg config.Config) *mailer.SMTPMailer {
	return mailer.NewSMTPMailer(cfg.SMTP)
}
