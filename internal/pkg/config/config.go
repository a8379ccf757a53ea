package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets)
// - default: values common across all environments (timezone, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	WhatsApp  WhatsAppConfig
	NATS      NATSConfig
	Assistant AssistantConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:""`
}

// WhatsAppConfig points at the HTTP message gateway. With an empty token
// the gateway reports itself disconnected and sends become no-ops.
type WhatsAppConfig struct {
	BaseURL     string        `envconfig:"WA_BASE_URL" default:"https://api.fonnte.com"`
	Token       string        `envconfig:"WA_TOKEN" default:""`
	CountryCode string        `envconfig:"WA_COUNTRY_CODE" default:"62"`
	Timeout     time.Duration `envconfig:"WA_TIMEOUT" default:"10s"`
}

// NATSConfig is optional; with an empty URL decision events are delivered
// in-process instead of through the broker.
type NATSConfig struct {
	URL string `envconfig:"NATS_URL" default:""`
}

type AssistantConfig struct {
	APIKey  string        `envconfig:"ASSISTANT_API_KEY" default:""`
	BaseURL string        `envconfig:"ASSISTANT_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model   string        `envconfig:"ASSISTANT_MODEL" default:"gemini-1.5-flash"`
	Timeout time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Jakarta",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
	}
}
