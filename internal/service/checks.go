package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// check is one independent validation or existence lookup
type check func(ctx context.Context) error

// runChecks runs every check concurrently and waits for all of them.
// When several fail, the error of the earliest check in argument order is
// returned, so the reported failure does not depend on scheduling.
func runChecks(ctx context.Context, checks ...check) error {
	errs := make([]error, len(checks))

	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			errs[i] = c(ctx)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
