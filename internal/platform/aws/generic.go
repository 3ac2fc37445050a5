package aws

import (
	"context"
	"fmt"
)

// ReconcileFuncs defines the functions required for generic reconciliation.
type ReconcileFuncs[T any] struct {
	// Get retrieves the resource. It must return (nil, nil) when the
	// resource does not exist and a non-nil error for any other failure.
	// A failed lookup is never treated as absence.
	Get func(ctx context.Context) (*T, error)
	// IsPresent reports whether a returned record counts as present.
	// If nil, any non-nil record is present. Used for status-gated
	// resources that a lookup can return in a deleted/inactive state.
	IsPresent func(resource *T) bool
	// Create creates the resource.
	Create func(ctx context.Context) (*T, error)
}

// reconcileResource ensures that a resource exists, short-circuiting when the
// lookup finds it. The boolean reports whether the creation branch ran.
func reconcileResource[T any](ctx context.Context, name string, funcs ReconcileFuncs[T]) (*T, bool, error) {
	resource, err := funcs.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s: %w", name, err)
	}

	if resource != nil && (funcs.IsPresent == nil || funcs.IsPresent(resource)) {
		return resource, false, nil
	}

	resource, err = funcs.Create(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", name, err)
	}

	return resource, true, nil
}
