package components

import (
	"kelurahan-booking/internal/handler"
	"kelurahan-booking/internal/handler/api"
	"kelurahan-booking/internal/handler/dto/request"
	"kelurahan-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewAuthHandler,
		api.NewPasswordResetHandler,
		api.NewAssistantHandler,
		api.NewGatewayHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		request.RegisterCustomValidators,
		handler.NewRouter,
	),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	room *api.RoomHandler,
	guest *api.GuestHandler,
	auth *api.AuthHandler,
	passwordReset *api.PasswordResetHandler,
	assistant *api.AssistantHandler,
	gateway *api.GatewayHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation:   reservation,
		Room:          room,
		Guest:         guest,
		Auth:          auth,
		PasswordReset: passwordReset,
		Assistant:     assistant,
		Gateway:       gateway,
	}
}
