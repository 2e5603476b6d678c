// Package config loads host configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server binary needs from the environment.
type Config struct {
	Port         int      `env:"PORT" envDefault:"8080"`
	AdminKey     string   `env:"ADMIN_KEY"`
	DBPath       string   `env:"DB_PATH" envDefault:"data/sovereign.db"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envSeparator:","`
	RandomOrgKey string   `env:"RANDOM_ORG_KEY"`
	Seed         int64    `env:"SEED" envDefault:"42"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
