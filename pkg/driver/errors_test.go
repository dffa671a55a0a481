package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/drivercheck/pkg/driver"
)

func TestDriverError_Messages(t *testing.T) {
	t.Parallel()

	cet := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		err  driver.DriverError
		want string
	}{
		{"alcohol", driver.AboveAllowedAlcoholLevelError{Level: 0.5}, "Alcohol level is: 0.5 grams/lt"},
		{"alcohol keeps float32 precision", driver.AboveAllowedAlcoholLevelError{Level: 0.49}, "Alcohol level is: 0.49 grams/lt"},
		{"alcohol whole number", driver.AboveAllowedAlcoholLevelError{Level: 2}, "Alcohol level is: 2 grams/lt"},
		{"age", driver.UnderRequiredAgeError{Age: 17}, "Age is: 17 years"},
		{"without licence", driver.ErrWithoutLicence, "Without licence"},
		{
			"expired",
			driver.LicenceExpiredError{Expiration: time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)},
			"Licence expired on date: 2024-03-09 12:00:00 UTC",
		},
		{
			"expired with fraction in another zone",
			driver.LicenceExpiredError{Expiration: time.Date(2024, time.March, 9, 13, 0, 0, 500_000_000, cet)},
			"Licence expired on date: 2024-03-09 12:00:00.5 UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDriverError_StructuralEquality(t *testing.T) {
	t.Parallel()

	exp := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	age17, alsoAge17, age16 := driver.UnderRequiredAgeError{Age: 17}, driver.UnderRequiredAgeError{Age: 17}, driver.UnderRequiredAgeError{Age: 16}
	assert.True(t, age17 == alsoAge17)
	assert.False(t, age17 == age16)

	var level, sameLevel error = driver.AboveAllowedAlcoholLevelError{Level: 0.5}, driver.AboveAllowedAlcoholLevelError{Level: 0.5}
	assert.True(t, level == sameLevel)

	var expired, sameExpired error = driver.LicenceExpiredError{Expiration: exp}, driver.LicenceExpiredError{Expiration: exp}
	assert.True(t, expired == sameExpired)

	var a, b error = driver.WithoutLicenceError{}, driver.ErrWithoutLicence
	assert.True(t, a == b)
}

func TestDriverError_Translation(t *testing.T) {
	t.Parallel()

	exp := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		err    driver.DriverError
		key    string
		values []string
	}{
		{driver.AboveAllowedAlcoholLevelError{Level: 0.8}, "driver.above_allowed_alcohol_level", []string{"level", "0.8"}},
		{driver.UnderRequiredAgeError{Age: 15}, "driver.under_required_age", []string{"age", "15"}},
		{driver.ErrWithoutLicence, "driver.without_licence", nil},
		{driver.LicenceExpiredError{Expiration: exp}, "driver.licence_expired", []string{"date", "2023-01-01 00:00:00 UTC"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.err.TranslationKey())
			assert.Equal(t, tt.values, tt.err.TranslationValues())
		})
	}
}
