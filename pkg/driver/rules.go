package driver

import (
	"time"

	"github.com/dmitrymomot/drivercheck/pkg/validator"
)

// Rule is a driver eligibility check.
type Rule = validator.Rule[Driver]

// HasAge requires the driver to be at least RequiredAge years old.
type HasAge struct {
	RequiredAge uint8
}

func (r HasAge) Run(d *Driver) error {
	if d.Age < r.RequiredAge {
		return UnderRequiredAgeError{Age: d.Age}
	}
	return nil
}

// IsSober rejects drivers whose blood-alcohol level is strictly above
// AllowedLevel.
type IsSober struct {
	AllowedLevel float32
}

func (r IsSober) Run(d *Driver) error {
	if d.AlcoholInBlood > r.AllowedLevel {
		return AboveAllowedAlcoholLevelError{Level: d.AlcoholInBlood}
	}
	return nil
}

// HasDrivingLicence requires the driver to hold a licence.
type HasDrivingLicence struct{}

func (HasDrivingLicence) Run(d *Driver) error {
	if !d.HasLicence() {
		return ErrWithoutLicence
	}
	return nil
}

// HasValidDrivingLicence rejects a licence that expired before Date.
// Drivers without a licence pass; HasDrivingLicence covers that case.
type HasValidDrivingLicence struct {
	Date time.Time
}

func (r HasValidDrivingLicence) Run(d *Driver) error {
	if !d.HasLicence() {
		return nil
	}
	if !d.Licence.IsValidAt(r.Date) {
		return LicenceExpiredError{Expiration: d.Licence.Expiration}
	}
	return nil
}

// Validator checks drivers against an ordered set of rules.
type Validator = validator.Validator[Driver]

// NewValidator builds a Validator from rules in the given order.
func NewValidator(rules []Rule, opts ...validator.Option) *Validator {
	return validator.New(rules, opts...)
}

// NewBuilder starts a fluent Validator builder for drivers.
func NewBuilder() *validator.Builder[Driver] {
	return validator.NewBuilder[Driver]()
}

// DriverErrors returns the driver violations in v, in order.
func DriverErrors(v validator.Violations) []DriverError {
	return validator.As[DriverError](v)
}
