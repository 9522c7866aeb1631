// Package config loads application configuration from the environment and
// carries the wired dependencies the services are built from.
package config

import "time"

// DB holds database connection settings.
type DB struct {
	Url string `envconfig:"URL"`
}

// Jwt holds token-signing settings for the auth layer.
type Jwt struct {
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Auth toggles request authentication. When disabled, card creation is
// anonymous and no routes require a bearer token.
type Auth struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
	Jwt     Jwt  `envconfig:"JWT"`
}

// Server holds HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// App is the root configuration.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Server Server `envconfig:"SERVER"`
	DB     DB     `envconfig:"DATABASE"`
	Auth   Auth   `envconfig:"AUTH"`
}
