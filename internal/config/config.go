package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the Nijouzu API
type Config struct {
	// Server configuration
	HTTPHost string `env:"NIJOUZU_HTTP_HOST"`
	HTTPPort int    `env:"NIJOUZU_HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional surfaces
	MetricsEnabled bool `env:"NIJOUZU_METRICS_ENABLED" envDefault:"true"`
	DocsEnabled    bool `env:"NIJOUZU_DOCS_ENABLED" envDefault:"true"`

	ShutdownTimeout time.Duration `env:"NIJOUZU_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Fixed at build time, not read from the environment
	Service ServiceInfo
	CORS    CORSConfig
}

// ServiceInfo describes the service in payloads and the API description page
type ServiceInfo struct {
	Name        string
	Title       string
	Description string
	Version     string
}

// CORSConfig holds the cross-origin policy
type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// DefaultServiceInfo returns the Nijouzu API metadata
func DefaultServiceInfo() ServiceInfo {
	return ServiceInfo{
		Name:        "nijouzu-api",
		Title:       "Nijouzu API",
		Description: "Japanese Learning API",
		Version:     "0.1.0",
	}
}

// DefaultCORS returns the cross-origin policy for the web frontend.
// All methods and all headers are permitted for the listed origins.
func DefaultCORS() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowCredentials: true,
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Service: DefaultServiceInfo(),
		CORS:    DefaultCORS(),
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Service.Name == "" || c.Service.Version == "" {
		return fmt.Errorf("service name and version are required")
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}
