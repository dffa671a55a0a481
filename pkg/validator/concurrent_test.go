package validator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/drivercheck/pkg/validator"
)

func TestValidateConcurrently(t *testing.T) {
	t.Parallel()

	rules := make([]validator.Rule[account], 0, 20)
	for i := range 20 {
		rules = append(rules, validator.RuleFunc[account](func(a *account) error {
			if i%2 == 0 {
				return fmt.Errorf("rule %d", i)
			}
			return nil
		}))
	}

	for _, limit := range []int{1, 3, 64} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			v := validator.New(rules, validator.WithConcurrency(limit))
			a := account{}

			got, err := v.ValidateConcurrently(context.Background(), &a)
			require.NoError(t, err)
			assert.Equal(t, v.Validate(&a), got)
			require.Len(t, got, 10)
			assert.Equal(t, "rule 0", got[0].Error())
			assert.Equal(t, "rule 18", got[9].Error())
		})
	}
}

func TestValidateConcurrently_NoViolations(t *testing.T) {
	t.Parallel()

	v := validator.Of[account](hasName, nonNegative)
	got, err := v.ValidateConcurrently(context.Background(), &account{Name: "bob"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidateConcurrently_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := validator.Of[account](hasName, nonNegative)
	got, err := v.ValidateConcurrently(ctx, &account{})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, validator.ErrValidationAborted))
	assert.True(t, errors.Is(err, context.Canceled))
}
