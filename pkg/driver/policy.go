package driver

import (
	"time"

	"github.com/dmitrymomot/drivercheck/pkg/config"
	"github.com/dmitrymomot/drivercheck/pkg/validator"
)

// Policy holds the eligibility thresholds, read from the environment.
type Policy struct {
	RequiredAge         uint8   `env:"DRIVER_REQUIRED_AGE" envDefault:"18"`
	AllowedAlcoholLevel float32 `env:"DRIVER_ALLOWED_ALCOHOL_LEVEL" envDefault:"0.49"`
	RequireLicence      bool    `env:"DRIVER_REQUIRE_LICENCE" envDefault:"true"`
	CheckLicenceExpiry  bool    `env:"DRIVER_CHECK_LICENCE_EXPIRY" envDefault:"true"`
}

// DefaultPolicy returns the built-in thresholds without reading the
// environment.
func DefaultPolicy() Policy {
	return Policy{
		RequiredAge:         18,
		AllowedAlcoholLevel: 0.49,
		RequireLicence:      true,
		CheckLicenceExpiry:  true,
	}
}

// LoadPolicy reads the policy from the environment and .env file.
func LoadPolicy() (Policy, error) {
	var p Policy
	if err := config.Load(&p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Rules returns the policy's rules as of now: licence presence, licence
// expiry, sobriety, then age. Disabled licence checks are left out.
func (p Policy) Rules(now time.Time) []Rule {
	rules := make([]Rule, 0, 4)
	if p.RequireLicence {
		rules = append(rules, HasDrivingLicence{})
	}
	if p.CheckLicenceExpiry {
		rules = append(rules, HasValidDrivingLicence{Date: now})
	}
	return append(rules,
		IsSober{AllowedLevel: p.AllowedAlcoholLevel},
		HasAge{RequiredAge: p.RequiredAge},
	)
}

// Validator builds a Validator for the policy as of now.
func (p Policy) Validator(now time.Time, opts ...validator.Option) *Validator {
	return NewValidator(p.Rules(now), opts...)
}
