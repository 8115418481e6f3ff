package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rostercheck/pkg/constants"
)

func TestLoadConfig_Environment(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("MAPPING_MASTER_IDENTIFIER", "CEDULA")
	t.Setenv("MAPPING_VALIDATION_WORKPLACE", "SEDE")
	t.Setenv("STRATEGY", "linear")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "CEDULA", cfg.Mapping.Master.Identifier)
	assert.Equal(t, "SEDE", cfg.Mapping.Validation.Workplace)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "stderr", cfg.LogOutput)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { _ = os.Unsetenv("LABELS_VALIDATION") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LABELS_VALIDATION=Planilla\n"), 0o644))
	t.Chdir(dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Planilla", cfg.ValidationLabel)

	master, validation := cfg.labels()
	assert.Equal(t, constants.MasterLabel, master)
	assert.Equal(t, "Planilla", validation)
}

func TestConfig_LoadFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mapping:\n  validation:\n    name: NOMBRES\nstrategy: linear\n"), 0o644))

	cfg := &Config{}
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "NOMBRES", cfg.Mapping.Validation.Name)
	assert.Equal(t, "linear", cfg.Strategy)

	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestConfig_UpdateFromFlags(t *testing.T) {
	cfg := &Config{Format: "yaml", NoColor: true}

	cfg.UpdateFromFlags(true, false, false, "", "trace")
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor, "NO_COLOR from config is kept")
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "trace", cfg.LogLevel)

	cfg.UpdateFromFlags(false, true, false, "json", "")
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Quiet)
}
