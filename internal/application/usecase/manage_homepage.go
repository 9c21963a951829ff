package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/domain/repository"
	"github.com/bnema/takemehome/internal/logging"
)

// SetHomepageOutput reports the stored URL.
type SetHomepageOutput struct {
	URL string
}

// ManageHomepageUseCase reads and writes the homepage preference.
type ManageHomepageUseCase struct {
	repo repository.HomepageRepository
}

// NewManageHomepageUseCase creates a new homepage management use case.
func NewManageHomepageUseCase(repo repository.HomepageRepository) *ManageHomepageUseCase {
	return &ManageHomepageUseCase{repo: repo}
}

// Get returns the stored homepage, or "" when none is set.
func (uc *ManageHomepageUseCase) Get(ctx context.Context) (string, error) {
	u, err := uc.repo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get homepage: %w", err)
	}
	return u, nil
}

// Set completes a missing scheme, validates and stores raw.
func (uc *ManageHomepageUseCase) Set(ctx context.Context, raw string) (*SetHomepageOutput, error) {
	log := logging.FromContext(ctx)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyHomepage
	}

	full := homepage.EnsureScheme(raw)
	parsed, err := url.Parse(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHomepage, err)
	}
	if !homepage.HasValidProtocol(full) {
		return nil, fmt.Errorf("%w: %s:// is not supported, use http or https", ErrInvalidHomepage, parsed.Scheme)
	}
	if _, ok := homepage.Normalize(full); !ok || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidHomepage, raw)
	}

	if err := uc.repo.Set(ctx, full); err != nil {
		return nil, fmt.Errorf("failed to save homepage: %w", err)
	}
	log.Info().Str("url", full).Msg("homepage saved")

	return &SetHomepageOutput{URL: full}, nil
}

// Clear removes the homepage preference.
func (uc *ManageHomepageUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear homepage: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("homepage cleared")
	return nil
}
