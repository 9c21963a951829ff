package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/application/usecase"
	repomocks "github.com/bnema/takemehome/internal/domain/repository/mocks"
)

func TestManageHomepageUseCase_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
	}{
		{"full url kept", "https://example.com/start", "https://example.com/start"},
		{"whitespace trimmed", "  https://example.com  ", "https://example.com"},
		{"https completed", "example.com", "https://example.com"},
		{"local address gets http", "localhost:3000", "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockHomepageRepository(t)
			repo.EXPECT().Set(mock.Anything, tt.wantURL).Return(nil)

			out, err := usecase.NewManageHomepageUseCase(repo).Set(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, out.URL)
		})
	}
}

func TestManageHomepageUseCase_Set_Rejects(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		repo := repomocks.NewMockHomepageRepository(t)
		_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "   ")
		assert.ErrorIs(t, err, usecase.ErrEmptyHomepage)
	})

	t.Run("no host", func(t *testing.T) {
		repo := repomocks.NewMockHomepageRepository(t)
		_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "https://")
		assert.ErrorIs(t, err, usecase.ErrInvalidHomepage)
	})

	t.Run("file url", func(t *testing.T) {
		repo := repomocks.NewMockHomepageRepository(t)
		_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "file:///home/me/start.html")
		assert.ErrorIs(t, err, usecase.ErrInvalidHomepage)
	})

	t.Run("other scheme", func(t *testing.T) {
		repo := repomocks.NewMockHomepageRepository(t)
		_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "ftp://example.com/")
		assert.ErrorIs(t, err, usecase.ErrInvalidHomepage)
	})

	t.Run("bad escape", func(t *testing.T) {
		repo := repomocks.NewMockHomepageRepository(t)
		_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "https://example.com/%zz")
		assert.ErrorIs(t, err, usecase.ErrInvalidHomepage)
	})
}

func TestManageHomepageUseCase_Set_RepoFailure(t *testing.T) {
	repo := repomocks.NewMockHomepageRepository(t)
	repo.EXPECT().Set(mock.Anything, "https://example.com").Return(errors.New("disk full"))

	_, err := usecase.NewManageHomepageUseCase(repo).Set(testContext(), "https://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save homepage")
}

func TestManageHomepageUseCase_GetClear(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockHomepageRepository(t)
	repo.EXPECT().Get(mock.Anything).Return("https://example.com", nil).Once()
	repo.EXPECT().Clear(mock.Anything).Return(nil).Once()

	uc := usecase.NewManageHomepageUseCase(repo)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	require.NoError(t, uc.Clear(ctx))
}
