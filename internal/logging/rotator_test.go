package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFile_AppendsWithoutRotation(t *testing.T) {
	dir := t.TempDir()

	r, err := NewRotatingFile(dir, "takemehome.log", 1, 2)
	require.NoError(t, err)

	_, err = r.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filepath.Join(dir, "takemehome.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()

	r, err := NewRotatingFile(dir, "takemehome.log", 1, 1)
	require.NoError(t, err)
	defer r.Close()

	chunk := []byte(strings.Repeat("x", 700*1024))
	for i := 0; i < 4; i++ {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "takemehome.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"WARN", "warn"},
		{" error ", "error"},
		{"", "info"},
		{"bogus", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in).String())
		})
	}
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{
		Enabled:   true,
		Dir:       dir,
		Filename:  RunLogFilename("20250101_000000_abcd"),
		MaxSizeMB: 1,
	})
	require.NoError(t, err)
	logger.Info().Str("tab_id", "t1").Msg("tracked")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "run_20250101_000000_abcd.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tab_id":"t1"`)
	assert.Contains(t, string(data), `"message":"tracked"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("dropped")
	assert.Equal(t, DefaultConfig().Level, logger.GetLevel())
}
