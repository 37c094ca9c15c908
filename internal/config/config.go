package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const devSessionSecret = "dev-secret-change-in-production"

var (
	ErrMissingBaseURL = errors.New("API_BASE_URL must be set")
	ErrInsecureSecret = errors.New("SESSION_SECRET must be set in production environment")
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"3000"`
	Env               string        `envconfig:"ENV" default:"development"`
	APIBaseURL        string        `envconfig:"API_BASE_URL" required:"true"`
	SessionSecret     string        `envconfig:"SESSION_SECRET" default:"dev-secret-change-in-production"`
	SessionTTL        time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	RateLimitRPS      float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst    int           `envconfig:"RATE_LIMIT_BURST" default:"10"`

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a proxy that sets those headers.
	TrustProxy bool `envconfig:"TRUST_PROXY" default:"false"`
}

// Load reads the configuration from the environment. Callers load any .env
// file beforehand.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	// envconfig accepts a variable that is present but empty.
	if cfg.APIBaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}

	if cfg.Env == "production" && (cfg.SessionSecret == "" || cfg.SessionSecret == devSessionSecret) {
		return Config{}, ErrInsecureSecret
	}

	return cfg, nil
}

// LoginRequired reports whether the admin pages sit behind a password.
func (c Config) LoginRequired() bool {
	return c.AdminPasswordHash != ""
}
