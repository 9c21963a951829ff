// Package sqlite provides the SQLite-backed homepage preference store.
//
// The lazy wrappers defer opening the database until a repository method
// runs, so commands that never read preferences do not pay for it.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/repository"
)

// LazyHomepageRepository wraps the homepage repository with lazy database
// initialization.
type LazyHomepageRepository struct {
	provider port.DatabaseProvider
	repo     repository.HomepageRepository
	once     sync.Once
	initErr  error
}

// NewLazyHomepageRepository creates a lazy-loading homepage repository.
func NewLazyHomepageRepository(provider port.DatabaseProvider) repository.HomepageRepository {
	return &LazyHomepageRepository{provider: provider}
}

func (r *LazyHomepageRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewHomepageRepository(db)
	})
	return r.initErr
}

func (r *LazyHomepageRepository) Get(ctx context.Context) (string, error) {
	if err := r.init(ctx); err != nil {
		return "", err
	}
	return r.repo.Get(ctx)
}

func (r *LazyHomepageRepository) Set(ctx context.Context, url string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, url)
}

func (r *LazyHomepageRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}
