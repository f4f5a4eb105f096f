// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are merged into the process environment, then the environment is
// parsed into a struct using `env` and `envDefault` field tags.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		HTTP     httpserver.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Nested structs are parsed recursively, so reusable sections such as
// httpserver.Config carry their own tags.
package config
