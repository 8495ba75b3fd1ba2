package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data/tokens", cfg.Tokens.Directory)
	assert.False(t, cfg.Tokens.BypassChecksum)
	assert.Equal(t, 10, cfg.Performance.MaxConcurrentRoutines)
	assert.Empty(t, cfg.TrackedNetworkIdentifiers)
}

func TestParse_NormalizesTrackedNetworks(t *testing.T) {
	yml := `
trackedNetworks: [" Ethereum ", "bsc", "ethereum", ""]
cache:
  defaultExpirationMinutes: -5
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, []string{"ethereum", "bsc"}, cfg.TrackedNetworkIdentifiers)
	assert.Equal(t, 0, cfg.Cache.DefaultExpirationMinutes)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
logging:
  level: debug
tokens:
  directory: /srv/tokens
  bypassChecksum: true
trackedNetworks:
  - ethereum
cache:
  defaultExpirationMinutes: 30
  cleanupIntervalMinutes: 60
performance:
  maxConcurrentRoutines: 4
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/tokens", cfg.Tokens.Directory)
	assert.True(t, cfg.Tokens.BypassChecksum)
	assert.Equal(t, []string{"ethereum"}, cfg.TrackedNetworkIdentifiers)
	assert.Equal(t, 30, cfg.Cache.DefaultExpirationMinutes)
	assert.Equal(t, 60, cfg.Cache.CleanupIntervalMinutes)
	assert.Equal(t, 4, cfg.Performance.MaxConcurrentRoutines)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("trackedNetworks: {"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}
