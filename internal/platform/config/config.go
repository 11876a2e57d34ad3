// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors. No global variables are used to store config.
*/
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Bazaar API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// CacheTTL bounds how stale category counts, region lists and the popular feed may get.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// PopularCacheTTL is shorter: the trending list moves with every search hit.
	PopularCacheTTL time.Duration `env:"POPULAR_CACHE_TTL" envDefault:"30s"`

	// Token verification (tokens are issued by the identity service)
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"bazaar.uz"`

	// Localization
	DefaultLocale    string   `env:"DEFAULT_LOCALE"    envDefault:"uz"`
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envDefault:"uz,ru" envSeparator:","`

	// Messaging (NATS). Empty disables event publishing.
	NatsURL string `env:"NATS_URL"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"bazaar.uz"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	for i, code := range c.SupportedLocales {
		c.SupportedLocales[i] = strings.ToLower(strings.TrimSpace(code))
	}
	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))

	if !slices.Contains(c.SupportedLocales, c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE %q must be listed in SUPPORTED_LOCALES %v", c.DefaultLocale, c.SupportedLocales)
	}

	if c.CacheTTL <= 0 || c.PopularCacheTTL <= 0 {
		return fmt.Errorf("config: cache TTLs must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix is the host suffix accepted by CORS outside development.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
