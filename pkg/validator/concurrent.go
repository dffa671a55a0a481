package validator

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ValidateConcurrently evaluates the rules in parallel and returns the same
// ordered Violations as Validate. Rules must not mutate t.
//
// The only error is ErrValidationAborted, joined with the context error,
// when ctx is done before every rule has run.
func (v *Validator[T]) ValidateConcurrently(ctx context.Context, t *T) (Violations, error) {
	results := make([]error, len(v.rules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.concurrency)

	for i, r := range v.rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.Run(t)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(ErrValidationAborted, err)
	}

	var violations Violations
	for _, err := range results {
		if err != nil {
			violations = append(violations, err)
		}
	}
	v.report(violations)
	return violations, nil
}
