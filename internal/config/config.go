// Package config loads the console's configuration from the environment.
//
// An optional .env file is read first with godotenv, then the process
// environment is parsed into Config with github.com/caarlos0/env.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SessionBackend selects where the session token is persisted.
type SessionBackend string

const (
	SessionBackendFile   SessionBackend = "file"
	SessionBackendMemory SessionBackend = "memory"
	SessionBackendRedis  SessionBackend = "redis"
	SessionBackendCookie SessionBackend = "cookie"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := SessionBackend(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case SessionBackendFile, SessionBackendMemory, SessionBackendRedis, SessionBackendCookie:
		*b = v
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, memory, redis, cookie)", string(text))
	}
}

// SessionConfig controls session token persistence.
type SessionConfig struct {
	Backend  SessionBackend `env:"BACKEND"   envDefault:"file"`
	File     string         `env:"FILE"      envDefault:".orderdesk/session"`
	Secret   string         `env:"SECRET"    envDefault:"orderdesk-dev-secret-change-me"`
	RedisKey string         `env:"REDIS_KEY" envDefault:"orderdesk:session:token"`
}

// Config holds all configuration for the console.
type Config struct {
	// BackendURL is the base address of the order service.
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	// BackendTimeout bounds each backend call; zero means no client timeout.
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"0s"`

	Addr      string `env:"APP_ADDR"       envDefault:":8080"`
	Locale    string `env:"CONSOLE_LOCALE" envDefault:"fr"`
	LogFormat string `env:"LOG_FORMAT"     envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL"      envDefault:"debug"`
	RedisAddr string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`

	Session SessionConfig `envPrefix:"SESSION_"`
}

// Load reads .env if present and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet; the standard logger is fine here.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse parses the process environment without touching .env files.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
