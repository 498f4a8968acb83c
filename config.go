package tracker

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the process-wide settings, read from the environment with an
// optional .env file on top.
type Config struct {
	// APIKey authenticates against Alpha Vantage. Empty means no real price
	// source is available and the CLI falls back to an announced demo mode.
	APIKey string `env:"ALPHA_VANTAGE_API_KEY"`

	// PortfolioFile is the snapshot file the Store reads and rewrites.
	PortfolioFile string `env:"PORTFOLIO_FILE" envDefault:"portfolio.json"`

	// QuoteTimeout bounds every price lookup.
	QuoteTimeout time.Duration `env:"QUOTE_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads a .env file when present, then parses the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse environment: %w", err)
	}
	return cfg, nil
}
