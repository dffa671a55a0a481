// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load parses the environment into any struct and caches the result per
//     type, so repeated calls are cheap and consistent.
//   - MustLoad panics on failure for configuration required at startup.
//   - LoadEnv / MustLoadEnv read one or more .env files; later files override
//     earlier ones.
//   - ForceReload and ResetCache drop cached values, which is handy in tests.
//
// # Usage
//
//	type Policy struct {
//		RequiredAge         uint8   `env:"DRIVER_REQUIRED_AGE" envDefault:"18"`
//		AllowedAlcoholLevel float32 `env:"DRIVER_ALLOWED_ALCOHOL_LEVEL" envDefault:"0.49"`
//	}
//
//	var p Policy
//	config.MustLoad(&p)
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig and file failures with
// ErrLoadingEnvFile, so callers can use errors.Is on either.
package config
