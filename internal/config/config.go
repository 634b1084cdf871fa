package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath   string `env:"BLACKJACK_DATABASE_PATH" envDefault:"./blackjack.db"`
	Seed           int64  `env:"BLACKJACK_SEED" envDefault:"0"`
	StandingsLimit int    `env:"BLACKJACK_STANDINGS_LIMIT" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
// A zero Seed means the deck is seeded from the clock.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StandingsLimit <= 0 {
		return nil, fmt.Errorf("BLACKJACK_STANDINGS_LIMIT must be positive, got %d", cfg.StandingsLimit)
	}

	return &cfg, nil
}
