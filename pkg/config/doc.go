// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is applied once per process, then env.Parse fills the
// struct based on `env` field tags. Each component of the application declares
// its own Config struct and loads it at startup:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
// Sentinel errors (ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer) can be
// matched with errors.Is.
package config
