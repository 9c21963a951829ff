// Package repository declares the persistence boundaries.
package repository

import "context"

// HomepageRepository persists the single homepage preference.
type HomepageRepository interface {
	// Get returns the configured homepage URL, or "" when none is set.
	Get(ctx context.Context) (string, error)

	// Set stores the homepage URL, replacing any previous value.
	Set(ctx context.Context, url string) error

	// Clear removes the homepage preference.
	Clear(ctx context.Context) error
}
