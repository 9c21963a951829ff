package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/takemehome/internal/cli/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestStatusRenderer_Render(t *testing.T) {
	r := styles.NewStatusRenderer(testTheme())

	out := r.Render(styles.StatusReport{
		Homepage:      "https://example.com/",
		ConfigFile:    "/home/u/.config/takemehome/config.toml",
		DatabaseFile:  "/home/u/.local/share/takemehome/takemehome.sqlite",
		SchemaVersion: 1,
		Browser:       "launch chromium",
		LastRunLog:    "/home/u/.local/state/takemehome/logs/run_x.log",
		LastRunAt:     time.Now().Add(-2 * time.Hour),
		Tracking: &styles.TrackingReport{
			State:   "Tracking",
			TabID:   "ABC",
			TabURL:  "https://example.com/?TakeMeHomeSameTab=true",
			OpenTab: 4,
		},
	})

	assert.Contains(t, out, "Configured")
	assert.Contains(t, out, "https://example.com/")
	assert.Contains(t, out, "schema v1")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "ABC")
}

func TestStatusRenderer_NoHomepage(t *testing.T) {
	r := styles.NewStatusRenderer(testTheme())

	out := r.Render(styles.StatusReport{
		Tracking: &styles.TrackingReport{Err: "browser unreachable"},
	})

	assert.Contains(t, out, "No homepage")
	assert.Contains(t, out, "takemehome set <url>")
	assert.Contains(t, out, "browser unreachable")
	assert.NotContains(t, out, "Last run")
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 10 * time.Second, want: "just now"},
		{ago: 5 * time.Minute, want: "5m ago"},
		{ago: time.Hour + time.Minute, want: "1h ago"},
		{ago: 3 * 24 * time.Hour, want: "3d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.RelativeTime(time.Now().Add(-tt.ago)))
		})
	}
}
