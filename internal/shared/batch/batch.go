// Package batch fans a per-school job out over many schools. Each school runs
// in isolation: a failure or panic in one school is recorded in its result and
// never cancels the others.
package batch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type SchoolResult[T any] struct {
	SchoolID string
	Result   T
	Err      error
}

func (r SchoolResult[T]) OK() bool {
	return r.Err == nil
}

// ForEachSchool runs fn once per school with at most limit schools in flight
// and returns the outcomes in the order of schoolIDs.
func ForEachSchool[T any](
	ctx context.Context,
	schoolIDs []string,
	limit int,
	fn func(ctx context.Context, schoolID string) (T, error),
) []SchoolResult[T] {
	results := make([]SchoolResult[T], len(schoolIDs))
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	var mu sync.Mutex
	for i, schoolID := range schoolIDs {
		i, schoolID := i, schoolID
		g.Go(func() error {
			res, err := runIsolated(ctx, schoolID, fn)

			mu.Lock()
			results[i] = SchoolResult[T]{SchoolID: schoolID, Result: res, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func runIsolated[T any](
	ctx context.Context,
	schoolID string,
	fn func(ctx context.Context, schoolID string) (T, error),
) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("school %s: panic: %v", schoolID, r)
		}
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}
	return fn(ctx, schoolID)
}
