package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

// Env holds settings read from the process environment.
type Env struct {
	DBPath   string `env:"CALPICK_DB_PATH"`
	LogFile  string `env:"CALPICK_LOG_FILE"`
	LogLevel string `env:"CALPICK_LOG_LEVEL" envDefault:"info"`
	Theme    string `env:"CALPICK_THEME"`
	NoStore  bool   `env:"CALPICK_NO_STORE"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("error parsing environment variables: %w", err)
	}
	return e, nil
}
