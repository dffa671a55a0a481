package config

import (
	"errors"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Later files override earlier ones; variables already set in
// the process environment are overridden as well so that explicit files win.
// Cached configurations are dropped so the next Load sees the new values.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	ResetCache()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}
