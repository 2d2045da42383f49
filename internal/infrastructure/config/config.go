package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	Version    string `env:"VERSION,     default=1.0.0"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:5173"`

	JWT      JWTConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

// JWTConfig holds the token signing settings. A missing secret is a fatal
// startup condition, enforced by the required tag.
type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET, required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN, default=24h"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, required"`
}

// RedisConfig is optional: an empty address disables the public-list cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
