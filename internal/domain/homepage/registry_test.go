package homepage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/domain/homepage/mocks"
)

const markedURL = "https://example.com/?TakeMeHomeSameTab=true"

func TestRegistry_SetClear(t *testing.T) {
	reg := homepage.NewRegistry(mocks.NewMockTabLookup(t))

	_, ok := reg.Current()
	assert.False(t, ok)

	reg.Set("tab-1")
	id, ok := reg.Current()
	require.True(t, ok)
	assert.Equal(t, entity.TabID("tab-1"), id)
	assert.True(t, reg.IsTracked("tab-1"))

	reg.Set("tab-2")
	assert.False(t, reg.IsTracked("tab-1"))
	assert.True(t, reg.IsTracked("tab-2"))

	reg.Clear()
	_, ok = reg.Current()
	assert.False(t, ok)
}

func TestRegistry_Validate_AfterClearDoesNotLookUp(t *testing.T) {
	// No expectations: any GetTab call fails the test.
	lookup := mocks.NewMockTabLookup(t)
	reg := homepage.NewRegistry(lookup)

	reg.Set("tab-1")
	reg.Clear()

	result := reg.Validate(context.Background())
	assert.False(t, result.Valid)
	assert.Nil(t, result.Tab)
}

func TestRegistry_Validate_ValidTab(t *testing.T) {
	ctx := context.Background()
	lookup := mocks.NewMockTabLookup(t)
	reg := homepage.NewRegistry(lookup)

	tab := &entity.Tab{ID: "tab-1", WindowID: 1, URL: markedURL}
	lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).Return(tab, nil).Once()

	reg.Set("tab-1")
	result := reg.Validate(ctx)

	assert.True(t, result.Valid)
	assert.Equal(t, tab, result.Tab)
	assert.Equal(t, markedURL+"/", result.URL)
	assert.True(t, reg.IsTracked("tab-1"))
}

func TestRegistry_Validate_ClosedTabClearsOnce(t *testing.T) {
	ctx := context.Background()
	lookup := mocks.NewMockTabLookup(t)
	reg := homepage.NewRegistry(lookup)

	lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).Return(nil, errors.New("no tab with given id")).Once()

	reg.Set("tab-1")

	first := reg.Validate(ctx)
	assert.False(t, first.Valid)
	_, ok := reg.Current()
	assert.False(t, ok)

	// The slot is already clear: no second lookup.
	second := reg.Validate(ctx)
	assert.False(t, second.Valid)
}

func TestRegistry_Validate_MarkerLostClears(t *testing.T) {
	ctx := context.Background()
	lookup := mocks.NewMockTabLookup(t)
	reg := homepage.NewRegistry(lookup)

	tab := &entity.Tab{ID: "tab-1", URL: "https://elsewhere.example/"}
	lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).Return(tab, nil).Once()

	reg.Set("tab-1")
	result := reg.Validate(ctx)

	assert.False(t, result.Valid)
	assert.Equal(t, tab, result.Tab)
	_, ok := reg.Current()
	assert.False(t, ok)
}

func TestRegistry_Validate_RetargetedDuringLookupKeepsNewTab(t *testing.T) {
	ctx := context.Background()
	lookup := mocks.NewMockTabLookup(t)
	reg := homepage.NewRegistry(lookup)

	lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).
		Run(func(_ context.Context, _ entity.TabID) {
			reg.Set("tab-2")
		}).
		Return(nil, errors.New("gone")).Once()

	reg.Set("tab-1")
	result := reg.Validate(ctx)

	assert.False(t, result.Valid)
	assert.True(t, reg.IsTracked("tab-2"))
}

func TestRegistry_Inspect(t *testing.T) {
	ctx := context.Background()

	t.Run("unset", func(t *testing.T) {
		reg := homepage.NewRegistry(mocks.NewMockTabLookup(t))
		state, tab := reg.Inspect(ctx)
		assert.Equal(t, homepage.StateUnset, state)
		assert.Nil(t, tab)
	})

	t.Run("valid", func(t *testing.T) {
		lookup := mocks.NewMockTabLookup(t)
		reg := homepage.NewRegistry(lookup)
		reg.Set("tab-1")
		lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).
			Return(&entity.Tab{ID: "tab-1", URL: markedURL}, nil)

		state, tab := reg.Inspect(ctx)
		assert.Equal(t, homepage.StateTrackedValid, state)
		require.NotNil(t, tab)
		assert.Equal(t, entity.TabID("tab-1"), tab.ID)
	})

	t.Run("stale keeps tracking", func(t *testing.T) {
		lookup := mocks.NewMockTabLookup(t)
		reg := homepage.NewRegistry(lookup)
		reg.Set("tab-1")
		lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).
			Return(&entity.Tab{ID: "tab-1", URL: "https://hijacked.example/"}, nil)

		state, tab := reg.Inspect(ctx)
		assert.Equal(t, homepage.StateTrackedStale, state)
		require.NotNil(t, tab)
		assert.True(t, reg.IsTracked("tab-1"))
	})

	t.Run("gone clears", func(t *testing.T) {
		lookup := mocks.NewMockTabLookup(t)
		reg := homepage.NewRegistry(lookup)
		reg.Set("tab-1")
		lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).Return(nil, errors.New("gone"))

		state, tab := reg.Inspect(ctx)
		assert.Equal(t, homepage.StateUnset, state)
		assert.Nil(t, tab)
		_, ok := reg.Current()
		assert.False(t, ok)
	})
}

func TestRegistry_ScanAndAdopt(t *testing.T) {
	ctx := context.Background()

	t.Run("adopts first marked tab", func(t *testing.T) {
		lookup := mocks.NewMockTabLookup(t)
		reg := homepage.NewRegistry(lookup)

		tabs := []*entity.Tab{
			{ID: "tab-1", URL: "https://other.example/"},
			{ID: "tab-2", URL: markedURL},
			{ID: "tab-3", URL: markedURL},
		}
		lookup.EXPECT().GetTab(ctx, entity.TabID("tab-2")).Return(tabs[1], nil).Once()

		assert.True(t, reg.ScanAndAdopt(ctx, tabs))
		assert.True(t, reg.IsTracked("tab-2"))
	})

	t.Run("clears when none marked", func(t *testing.T) {
		reg := homepage.NewRegistry(mocks.NewMockTabLookup(t))
		reg.Set("tab-9")

		assert.False(t, reg.ScanAndAdopt(ctx, []*entity.Tab{{ID: "tab-1", URL: "https://other.example/"}, nil}))
		_, ok := reg.Current()
		assert.False(t, ok)
	})

	t.Run("found tab closed before validation", func(t *testing.T) {
		lookup := mocks.NewMockTabLookup(t)
		reg := homepage.NewRegistry(lookup)

		lookup.EXPECT().GetTab(ctx, entity.TabID("tab-1")).Return(nil, errors.New("gone")).Once()

		assert.False(t, reg.ScanAndAdopt(ctx, []*entity.Tab{{ID: "tab-1", URL: markedURL}}))
		_, ok := reg.Current()
		assert.False(t, ok)
	})
}

func TestTrackingState_String(t *testing.T) {
	assert.Equal(t, "unset", homepage.StateUnset.String())
	assert.Equal(t, "tracked", homepage.StateTrackedValid.String())
	assert.Equal(t, "stale", homepage.StateTrackedStale.String())
}
