package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreBackendFirebase = "firebase"
	StoreBackendMemory   = "memory"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	BodyLimit string `env:"BODY_LIMIT" envDefault:"10M"`

	SchoolCode  string `env:"SCHOOL_CODE" envDefault:"GRA"`
	EmailDomain string `env:"EMAIL_DOMAIN" envDefault:"greenfield.edu"`

	StoreBackend     string        `env:"STORE_BACKEND" envDefault:"firebase"`
	StoreCallTimeout time.Duration `env:"STORE_CALL_TIMEOUT" envDefault:"10s"`
	UserListLimit    int           `env:"USER_LIST_LIMIT" envDefault:"100"`

	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail string `env:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey  string `env:"FIREBASE_PRIVATE_KEY"`

	// AdminGuardEnabled gates the bearer-token admin check on user routes.
	// Off by default for local development against the memory store.
	AdminGuardEnabled bool `env:"ADMIN_GUARD" envDefault:"false"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.StoreBackend != StoreBackendFirebase && cfg.StoreBackend != StoreBackendMemory {
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}
