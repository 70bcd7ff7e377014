package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Scrape ScrapeConfig
}

type ServerConfig struct {
	Port         string `env:"PORT" envDefault:"8080"`
	MetricsPort  string `env:"METRICS_PORT" envDefault:"9090"`
	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"*"`
}

type ScrapeConfig struct {
	// Timeout bounds each outbound price lookup so a hung competitor
	// page cannot stall a quote request indefinitely.
	Timeout            time.Duration `env:"SCRAPE_TIMEOUT" envDefault:"5s"`
	CexBaseURL         string        `env:"CEX_BASE_URL" envDefault:"https://uk.webuy.com"`
	MusicMagpieBaseURL string        `env:"MUSICMAGPIE_BASE_URL" envDefault:"https://www.musicmagpie.co.uk"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
