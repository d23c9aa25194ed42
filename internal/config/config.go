package config

import (
	"fmt"
	"strings"
	"time"

	"cats-api/internal/validation"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Las variables se leen con prefijo CATS_; "__" separa niveles:
// CATS_SERVER__READ_TIMEOUT=5s -> server.read_timeout -> Config.Server.ReadTimeout
const EnvPrefix = "CATS_"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	SmokeTest SmokeTestConfig `koanf:"smoketest"`
	Swagger   SwaggerConfig   `koanf:"swagger"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"required,oneof=local development staging production"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"oneof=postgres sqlite memory"`
	DSN             string        `koanf:"dsn" validate:"required_unless=Driver memory"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	PingTimeout     time.Duration `koanf:"ping_timeout" validate:"gt=0"`
	Migrate         bool          `koanf:"migrate"`
}

type AuthConfig struct {
	AdminRole string `koanf:"admin_role" validate:"required"`

	// Verificador remoto de tokens; si VerifyURL está vacío se usa el modo dev (X-Debug-User-ID).
	VerifyURL     string        `koanf:"verify_url" validate:"omitempty,url"`
	APIKey        string        `koanf:"api_key" validate:"required_with=VerifyURL"`
	VerifyTimeout time.Duration `koanf:"verify_timeout"`
}

type SmokeTestConfig struct {
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
}

type SwaggerConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Default devuelve la configuración de desarrollo: memoria, puerto 8080, logs en texto.
func Default() Config {
	return Config{
		App: AppConfig{Name: "cats-api", Env: "local"},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Database: DatabaseConfig{
			Driver:          DriverMemory,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
			PingTimeout:     3 * time.Second,
			Migrate:         true,
		},
		Auth: AuthConfig{
			AdminRole:     "admin",
			VerifyTimeout: 5 * time.Second,
		},
		SmokeTest: SmokeTestConfig{Timeout: 10 * time.Second},
		Swagger:   SwaggerConfig{Enabled: true},
	}
}

// Load parte de Default() y sobreescribe con las variables CATS_*.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// sqlite sólo admite un escritor; más conexiones sólo generan SQLITE_BUSY
	if cfg.Database.Driver == DriverSQLite {
		cfg.Database.MaxOpenConns = 1
	}

	if err := validation.Validator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func (c *Config) IsLocal() bool {
	return c.App.Env == "local"
}
