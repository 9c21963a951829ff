package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/infrastructure/config"
)

func useConfigFile(t *testing.T, path string) {
	t.Helper()
	prevFile, prevForce, prevWrite := globals.ConfigFile, initForce, schemaWrite
	globals.ConfigFile = path
	t.Cleanup(func() {
		globals.ConfigFile, initForce, schemaWrite = prevFile, prevForce, prevWrite
	})
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	useConfigFile(t, path)

	require.NoError(t, runConfigInit(nil, nil))

	mgr, err := config.NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, config.DefaultConfig().Homepage, mgr.Get().Homepage)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0o600))
	useConfigFile(t, path)

	err := runConfigInit(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	initForce = true
	require.NoError(t, runConfigInit(nil, nil))
	mgr, err := config.NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, "info", mgr.Get().Logging.Level)
}

func TestConfigSchema_Write(t *testing.T) {
	dir := t.TempDir()
	useConfigFile(t, filepath.Join(dir, "config.toml"))
	schemaWrite = true

	require.NoError(t, runConfigSchema(nil, nil))
	assert.FileExists(t, filepath.Join(dir, config.SchemaFileName))
}

func TestNoAppCommands(t *testing.T) {
	assert.Equal(t, "true", configSchemaCmd.Annotations[annotationNoApp])
	assert.Equal(t, "true", configInitCmd.Annotations[annotationNoApp])
	assert.Empty(t, statusCmd.Annotations[annotationNoApp])
}
