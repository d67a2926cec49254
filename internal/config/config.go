// Package config loads runtime settings from the environment, with an
// optional .env overlay for local development.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	Port        string        `envconfig:"PORT" default:"8080"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	// ProtectWrites gates every mutating resource route behind the bearer
	// guard. Off reproduces the open reference wiring.
	ProtectWrites bool `envconfig:"PROTECT_WRITES" default:"true"`
	AutoMigrate   bool `envconfig:"AUTO_MIGRATE" default:"false"`
}

func Load() (*Config, error) {
	// missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
