// Package config loads client settings from the environment with
// sensible defaults for local development.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls how the client connects.
type Config struct {
	// URL is the websocket endpoint of the chat server.
	URL string `env:"WIRECHAT_URL" envDefault:"ws://localhost:8080/ws"`
	// HandshakeTimeout bounds the initial dial.
	HandshakeTimeout time.Duration `env:"WIRECHAT_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	// ReadTimeout bounds a single read. Zero disables it; the server
	// handles idle detection with ping/pong.
	ReadTimeout time.Duration `env:"WIRECHAT_READ_TIMEOUT" envDefault:"0"`
	// WriteTimeout bounds a single write.
	WriteTimeout time.Duration `env:"WIRECHAT_WRITE_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment over the defaults and validates the
// result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the endpoint is a usable websocket URL.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("empty URL")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", c.URL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("URL scheme must be ws or wss, got %q", u.Scheme)
	}
	return nil
}
