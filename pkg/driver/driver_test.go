package driver_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/drivercheck/pkg/driver"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want driver.Category
	}{
		{"A", driver.CategoryA},
		{"a1", driver.CategoryA1},
		{" b ", driver.CategoryB},
		{"C", driver.CategoryC},
		{"d", driver.CategoryD},
		{"Be", driver.CategoryBE},
		{"CE", driver.CategoryCE},
		{"de", driver.CategoryDE},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := driver.ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), got.String())
		})
	}

	for _, bad := range []string{"", "AM", "B1", "X"} {
		_, err := driver.ParseCategory(bad)
		assert.True(t, errors.Is(err, driver.ErrUnknownCategory), "input %q", bad)
	}
}

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	assert.Len(t, driver.Categories, 8)
	for _, c := range driver.Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, driver.Category("Z").IsValid())
}

func TestLicence_IsValidAt(t *testing.T) {
	t.Parallel()

	l := driver.Licence{Category: driver.CategoryA, Expiration: reference}

	assert.True(t, l.IsValidAt(reference), "expiration instant is still valid")
	assert.True(t, l.IsValidAt(reference.Add(-time.Hour)))
	assert.False(t, l.IsValidAt(reference.Add(time.Nanosecond)))
	assert.False(t, l.IsValidAt(reference.AddDate(0, 0, 1)))
}

func TestDriver_HasLicence(t *testing.T) {
	t.Parallel()

	assert.False(t, (&driver.Driver{}).HasLicence())
	assert.True(t, (&driver.Driver{Licence: licenceExpiring(reference)}).HasLicence())
}
