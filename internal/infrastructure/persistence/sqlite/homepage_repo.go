package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/takemehome/internal/domain/repository"
	"github.com/bnema/takemehome/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/takemehome/internal/logging"
)

// homepageKey is the preferences row holding the homepage URL.
const homepageKey = "homepage"

type homepageRepo struct {
	queries *sqlc.Queries
}

// NewHomepageRepository creates a new SQLite-backed homepage preference.
func NewHomepageRepository(db *sql.DB) repository.HomepageRepository {
	return &homepageRepo{queries: sqlc.New(db)}
}

// Get returns the stored homepage, or "" when none is set.
func (r *homepageRepo) Get(ctx context.Context) (string, error) {
	value, err := r.queries.GetPreference(ctx, homepageKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read homepage: %w", err)
	}
	return value, nil
}

func (r *homepageRepo) Set(ctx context.Context, url string) error {
	logging.FromContext(ctx).Debug().Str("url", url).Msg("storing homepage")

	if err := r.queries.SetPreference(ctx, sqlc.SetPreferenceParams{Key: homepageKey, Value: url}); err != nil {
		return fmt.Errorf("failed to store homepage: %w", err)
	}
	return nil
}

func (r *homepageRepo) Clear(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("clearing homepage")
	return r.queries.DeletePreference(ctx, homepageKey)
}
