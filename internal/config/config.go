// Package config loads process-wide configuration from the environment.
// The resulting Config is immutable after Load and shared by reference.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config collects every startup setting. It is read once in main and never
// mutated afterwards.
type Config struct {
	DatabaseURL string

	// Token signing.
	JWTSecret []byte
	TokenTTL  time.Duration

	// Password hashing.
	PasswordSalt []byte
	HashWorkers  int

	// Optional admin bootstrap; both must be set to take effect.
	AdminUser     string
	AdminPassword string

	// Connection pool watermarks.
	PoolMinConns int32
	PoolMaxConns int32

	HTTPAddr string
}

// getenv returns the value of an environment variable, or def when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt returns an environment variable as int, or def when unset/invalid.
func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads configuration from the environment. Absence of a required value
// is reported as an error; main treats it as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:      time.Duration(getenvInt("JWT_EXPIRE_MINUTES", 60)) * time.Minute,
		PasswordSalt:  []byte(os.Getenv("PASSWORD_SALT")),
		HashWorkers:   getenvInt("HASH_WORKERS", 4),
		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		PoolMinConns:  int32(getenvInt("DB_POOL_MIN", 5)),
		PoolMaxConns:  int32(getenvInt("DB_POOL_MAX", 20)),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if len(cfg.PasswordSalt) == 0 {
		return nil, fmt.Errorf("PASSWORD_SALT is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRE_MINUTES must be positive")
	}
	if cfg.PoolMinConns > cfg.PoolMaxConns {
		return nil, fmt.Errorf("DB_POOL_MIN (%d) exceeds DB_POOL_MAX (%d)", cfg.PoolMinConns, cfg.PoolMaxConns)
	}
	return cfg, nil
}
