// Package config holds process configuration and tuning constants.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// WebSocket
	WriteWait      = 10 * time.Second
	PongWait       = 60 * time.Second
	PingPeriod     = (PongWait * 9) / 10
	MaxMessageSize = 512
	SendBufferSize = 256

	// Resources
	MaxResourceImages = 5

	// Identity
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "givego-service"
)

// Config is loaded from the environment with the GIVEGO prefix.
type Config struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN" default:"host=localhost user=user password=password dbname=givegodb port=5432 sslmode=disable"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"dev-only-secret"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("givego", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
