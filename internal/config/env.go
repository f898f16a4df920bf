package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for CLI flags.
const (
	EnvDBPath   = "SNAKE_DB"
	EnvSSHAddr  = "SNAKE_SSH_ADDR"
	EnvHostKey  = "SNAKE_HOST_KEY"
	EnvWSAddr   = "SNAKE_WS_ADDR"
	EnvLogLevel = "SNAKE_LOG_LEVEL"
	EnvConfig   = "SNAKE_CONFIG"
)

// LoadEnv reads the given .env files into the process environment.
// Missing files are not an error; variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// EnvOr returns the value of the environment variable, or def when it is unset or empty.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
