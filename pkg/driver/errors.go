package driver

import (
	"errors"
	"strconv"
	"time"
)

// ErrUnknownCategory is returned by ParseCategory for unrecognised tags.
var ErrUnknownCategory = errors.New("unknown licence category")

// DriverError is a violation reported by one of the driver rules.
// Every implementation is a comparable value, so two violations of the same
// kind with the same payload are equal.
type DriverError interface {
	error
	// TranslationKey identifies the localized message template.
	TranslationKey() string
	// TranslationValues lists placeholder name, value pairs for the template.
	TranslationValues() []string
}

// expirationLayout renders timestamps in UTC, with fractional seconds only
// when present.
const expirationLayout = "2006-01-02 15:04:05.999999999 UTC"

// AboveAllowedAlcoholLevelError reports the measured blood-alcohol level.
type AboveAllowedAlcoholLevelError struct {
	Level float32
}

func (e AboveAllowedAlcoholLevelError) Error() string {
	return "Alcohol level is: " + formatLevel(e.Level) + " grams/lt"
}

func (e AboveAllowedAlcoholLevelError) TranslationKey() string {
	return "driver.above_allowed_alcohol_level"
}

func (e AboveAllowedAlcoholLevelError) TranslationValues() []string {
	return []string{"level", formatLevel(e.Level)}
}

// UnderRequiredAgeError reports the driver's age.
type UnderRequiredAgeError struct {
	Age uint8
}

func (e UnderRequiredAgeError) Error() string {
	return "Age is: " + strconv.Itoa(int(e.Age)) + " years"
}

func (e UnderRequiredAgeError) TranslationKey() string {
	return "driver.under_required_age"
}

func (e UnderRequiredAgeError) TranslationValues() []string {
	return []string{"age", strconv.Itoa(int(e.Age))}
}

// WithoutLicenceError reports a driver holding no licence.
type WithoutLicenceError struct{}

// ErrWithoutLicence is the only WithoutLicenceError value.
var ErrWithoutLicence = WithoutLicenceError{}

func (WithoutLicenceError) Error() string {
	return "Without licence"
}

func (WithoutLicenceError) TranslationKey() string {
	return "driver.without_licence"
}

func (WithoutLicenceError) TranslationValues() []string {
	return nil
}

// LicenceExpiredError reports the expiration of a stale licence.
type LicenceExpiredError struct {
	Expiration time.Time
}

func (e LicenceExpiredError) Error() string {
	return "Licence expired on date: " + formatExpiration(e.Expiration)
}

func (e LicenceExpiredError) TranslationKey() string {
	return "driver.licence_expired"
}

func (e LicenceExpiredError) TranslationValues() []string {
	return []string{"date", formatExpiration(e.Expiration)}
}

func formatLevel(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func formatExpiration(t time.Time) string {
	return t.UTC().Format(expirationLayout)
}
