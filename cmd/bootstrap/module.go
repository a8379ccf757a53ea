package bootstrap

import (
	"kelurahan-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	NotifyModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
