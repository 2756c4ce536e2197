package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Finder.MaxRetry)
	assert.Equal(t, float32(1.5), cfg.Finder.Weight)
	assert.Equal(t, 100, cfg.Retry.MinDefaultRetryCap)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("finder:\n  max_retry: 42\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Finder.MaxRetry)
	assert.Equal(t, float32(1.5), cfg.Finder.Weight, "unset fields keep their embedded default")
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	assert.Panics(t, func() { Cfg() })
}

func TestInitAndCfg(t *testing.T) {
	require.NoError(t, Init(""))
	assert.NotNil(t, Cfg())
}
