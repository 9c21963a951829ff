package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}_[0-9a-f]{4}$`), id)
}

func TestParseRunLogFilename(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		wantID string
		wantOK bool
	}{
		{name: "run log", file: "run_20251217_205106_a7b3.log", wantID: "20251217_205106_a7b3", wantOK: true},
		{name: "rotated backup", file: "run_20251217_205106_a7b3.log.20251218-000000", wantOK: false},
		{name: "other file", file: "takemehome.log", wantOK: false},
		{name: "empty id", file: "run_.log", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseRunLogFilename(tt.file)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
	assert.Equal(t, "run_x.log", RunLogFilename("x"))
}

func TestLatestRunLog(t *testing.T) {
	dir := t.TempDir()

	_, ok := LatestRunLog(dir)
	assert.False(t, ok)

	for _, name := range []string{
		"run_20250101_100000_aaaa.log",
		"run_20250102_090000_bbbb.log",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	path, ok := LatestRunLog(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "run_20250102_090000_bbbb.log"), path)
}
