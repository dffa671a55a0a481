// Command drivercheck wires the driver eligibility validator from the
// environment and exits. It has no observable output at the default log level.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/drivercheck/pkg/config"
	"github.com/dmitrymomot/drivercheck/pkg/driver"
	"github.com/dmitrymomot/drivercheck/pkg/logger"
	"github.com/dmitrymomot/drivercheck/pkg/validator"
)

type appConfig struct {
	Env      string     `env:"APP_ENV" envDefault:"production"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "drivercheck"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	)

	policy, err := driver.LoadPolicy()
	if err != nil {
		log.Error("failed to load driver policy", logger.Error(err))
		os.Exit(1)
	}

	v := policy.Validator(time.Now(), validator.WithLogger(log))
	log.Debug("validator ready",
		logger.Count("rules", v.Len()),
		slog.Any("policy", policy),
	)
}
