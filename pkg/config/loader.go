package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment variables.
//
// The default .env file is loaded once per process before the first parse; a
// missing .env file is not an error. Parsing is delegated to env.Parse, so the
// struct is described with `env` field tags:
//
//	type JWTConfig struct {
//	    Secret string        `env:"JWT_SECRET,required"`
//	    TTL    time.Duration `env:"JWT_EXPIRE" envDefault:"24h"`
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional; real environments set variables directly.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// without which the process cannot start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more specific .env files into the process environment.
// Useful for tests and local tooling that need a non-default file.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
