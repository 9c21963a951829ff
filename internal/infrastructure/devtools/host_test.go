package devtools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func TestIsNoTarget(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "target", err: errors.New("No target with given id found (-32602)"), want: true},
		{name: "tab", err: errors.New("no tab with given id 12"), want: true},
		{name: "other", err: errors.New("websocket closed"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoTarget(tt.err))
		})
	}
}

func TestHost_WrapMapsMissingTargets(t *testing.T) {
	h := &Host{}

	err := h.wrap("activate", "tab-1", errors.New("No target with given id found"))
	var hostErr *port.HostError
	require.ErrorAs(t, err, &hostErr)
	assert.Equal(t, "activate", hostErr.Op)
	assert.ErrorIs(t, err, port.ErrTabNotFound)

	err = h.wrap("navigate", "tab-1", errors.New("net::ERR_NAME_NOT_RESOLVED"))
	assert.NotErrorIs(t, err, port.ErrTabNotFound)
	assert.Contains(t, err.Error(), "host navigate tab-1")
}

func TestSessionTable_RunInUnknownTab(t *testing.T) {
	table := newSessionTable(context.Background(), "takeMeHome", "", time.Second)

	err := table.runIn(testContext(), "missing")
	assert.ErrorIs(t, err, port.ErrTabNotFound)
	assert.Equal(t, 0, table.len())
	table.detach("missing")
}

func TestExecOptions(t *testing.T) {
	base := execOptions(Options{})
	full := execOptions(Options{
		ExecPath:    "/usr/bin/chromium",
		UserDataDir: "/tmp/profile",
		Headless:    true,
		ExtraFlags:  map[string]any{"window-size": "1280,800"},
	})
	assert.Len(t, full, len(base)+3)
}

func TestOptionsDefaults(t *testing.T) {
	assert.Equal(t, defaultStartTimeout, Options{}.startTimeout())
	assert.Equal(t, defaultActionTimeout, Options{}.actionTimeout())
	assert.Equal(t, time.Second, Options{ActionTimeout: time.Second}.actionTimeout())
}
