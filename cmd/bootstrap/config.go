package bootstrap

import (
	"log/slog"

	"kelurahan-booking/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

func LoadConfig() (config.Config, error) {
	// Optional; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return config.LoadConfig()
}
