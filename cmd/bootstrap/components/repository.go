package components

import (
	repo_impl "kelurahan-booking/internal/infra/repository"
	"kelurahan-booking/internal/usecase/commands"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationViewRepository,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(queries.RoomViewRepo)),
			fx.As(new(commands.RoomReader)),
		),
		fx.Annotate(
			repo_impl.NewGuestRepository,
			fx.As(new(commands.GuestRepository)),
			fx.As(new(queries.GuestViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewAdminRepository,
			fx.As(new(commands.AdminRepository)),
		),
		fx.Annotate(
			repo_impl.NewOTPRepository,
			fx.As(new(commands.OTPRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
