package config

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	envProduction   = "production"
	generatedSecret = 32
)

// ErrMissingSecret is returned when JWT_SECRET is unset in production.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required in production")

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Auth     AuthConfig
	SQL      SQLConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Activity ActivityConfig

	// SecretGenerated is set when no JWT_SECRET was provided outside
	// production and a random per-process secret was used instead.
	SecretGenerated bool
}

// AuthConfig has no work-factor setting: password hashes always use cost 10.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER, default=hirehive"`
}

type SQLConfig struct {
	Driver          string        `env:"DB_DRIVER,            default=mysql"`
	DSN             string        `env:"DB_DSN,               default=root:root@tcp(localhost:3306)/hirehive?parseTime=true"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// MongoConfig configures the activity log sink. An empty URI disables it.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=hirehive"`
}

// RedisConfig configures the token deny-list. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type ActivityConfig struct {
	Workers int `env:"ACTIVITY_WORKERS, default=4"`
}

// IsProduction reports whether ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == envProduction
}

// Load reads configuration from environment variables using go-envconfig.
// A nil lookuper reads the process environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSecret
		}
		secret := make([]byte, generatedSecret)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("config: generate secret: %w", err)
		}
		cfg.Auth.JWTSecret = string(secret)
		cfg.SecretGenerated = true
	}

	return &cfg, nil
}

// MustLoad is Load against the process environment, panicking on failure.
func MustLoad() *Config {
	cfg, err := Load(context.Background(), nil)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.SQL.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.SQL.Driver)
	}
	if c.SQL.DSN == "" {
		return errors.New("config: DB_DSN is required")
	}
	return nil
}
