package driver_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/drivercheck/pkg/config"
	"github.com/dmitrymomot/drivercheck/pkg/driver"
	"github.com/dmitrymomot/drivercheck/pkg/validator"
)

func TestDefaultPolicy(t *testing.T) {
	p := driver.DefaultPolicy()

	assert.Equal(t, uint8(18), p.RequiredAge)
	assert.Equal(t, float32(0.49), p.AllowedAlcoholLevel)
	assert.True(t, p.RequireLicence)
	assert.True(t, p.CheckLicenceExpiry)
}

func TestLoadPolicy(t *testing.T) {
	t.Run("defaults match DefaultPolicy", func(t *testing.T) {
		config.ResetCache()
		for _, k := range []string{
			"DRIVER_REQUIRED_AGE",
			"DRIVER_ALLOWED_ALCOHOL_LEVEL",
			"DRIVER_REQUIRE_LICENCE",
			"DRIVER_CHECK_LICENCE_EXPIRY",
		} {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}

		p, err := driver.LoadPolicy()
		require.NoError(t, err)
		assert.Equal(t, driver.DefaultPolicy(), p)
	})

	t.Run("environment overrides", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("DRIVER_REQUIRED_AGE", "21")
		t.Setenv("DRIVER_ALLOWED_ALCOHOL_LEVEL", "0.2")
		t.Setenv("DRIVER_REQUIRE_LICENCE", "false")
		t.Setenv("DRIVER_CHECK_LICENCE_EXPIRY", "false")

		p, err := driver.LoadPolicy()
		require.NoError(t, err)
		assert.Equal(t, driver.Policy{RequiredAge: 21, AllowedAlcoholLevel: 0.2}, p)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("DRIVER_REQUIRED_AGE", "old")

		_, err := driver.LoadPolicy()
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	config.ResetCache()
}

func TestPolicy_Rules(t *testing.T) {
	t.Parallel()

	p := driver.DefaultPolicy()
	assert.Equal(t, []driver.Rule{
		driver.HasDrivingLicence{},
		driver.HasValidDrivingLicence{Date: reference},
		driver.IsSober{AllowedLevel: 0.49},
		driver.HasAge{RequiredAge: 18},
	}, p.Rules(reference))

	p.RequireLicence = false
	p.CheckLicenceExpiry = false
	assert.Equal(t, []driver.Rule{
		driver.IsSober{AllowedLevel: 0.49},
		driver.HasAge{RequiredAge: 18},
	}, p.Rules(reference))
}

func TestPolicy_Validator(t *testing.T) {
	t.Parallel()

	v := driver.DefaultPolicy().Validator(reference)
	assert.Equal(t, 4, v.Len())

	expired := reference.AddDate(-1, 0, 0)
	got := v.Validate(&driver.Driver{Age: 17, AlcoholInBlood: 0.49, Licence: licenceExpiring(expired)})
	assert.Equal(t, validator.Violations{
		driver.LicenceExpiredError{Expiration: expired},
		driver.UnderRequiredAgeError{Age: 17},
	}, got)
}
