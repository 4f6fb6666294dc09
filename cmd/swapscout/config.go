package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// config holds the externally supplied settings of the binary. All values
// come from SWAPSCOUT_* environment variables; a local .env file is loaded
// first when present. The API key is a secret and is never hard-coded.
type config struct {
	APIKey      string        `envconfig:"API_KEY" required:"true"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.dev.dex.guru"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// loadConfig populates the config from the environment.
func loadConfig() (config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg config
	err := envconfig.Process("swapscout", &cfg)
	return cfg, err
}
