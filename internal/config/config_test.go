package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, []string{"specs"}, cfg.SpecDirs)
	require.Equal(t, "curator.log", cfg.LogFile)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Defaults()
	cfg.SpecDirs = []string{t.TempDir()}

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate_NoSpecDirs(t *testing.T) {
	cfg := Defaults()
	cfg.SpecDirs = nil

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one spec directory")
}

func TestConfig_Validate_MissingSpecDir(t *testing.T) {
	cfg := Defaults()
	cfg.SpecDirs = []string{filepath.Join(t.TempDir(), "absent")}

	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_SpecDirIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := Defaults()
	cfg.SpecDirs = []string{file}

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

func TestConfig_Validate_NonPositiveDebounce(t *testing.T) {
	cfg := Defaults()
	cfg.SpecDirs = []string{t.TempDir()}
	cfg.Watch.Debounce = 0

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "debounce")
}
