package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	SecretKey    string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	DBPath       string `env:"DB_PATH"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
	StaticDir    string `env:"STATIC_DIR"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
	Timezone     string `env:"TZ" envDefault:"UTC"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env is fine; explicit environment always wins.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	// env.Parse applies envDefault only to unset variables; a variable
	// set to the empty string comes through empty. Treat blank as unset.
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "change_me_in_production"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "vesta.db")
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = filepath.Join("internal", "templates")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = filepath.Join("web", "static")
	}

	return cfg, nil
}
