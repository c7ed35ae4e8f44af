package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "^TASI.SR", cfg.Market.IndexSymbol)
	assert.Equal(t, ".SR", cfg.Market.Suffix)
	assert.Equal(t, 365, cfg.Market.LookbackDays)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
	assert.Equal(t, 6*time.Hour, cfg.CacheTTL())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
scan:
  concurrency: 4
  cache_ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PORT", "9100")
	t.Setenv("CACHE_TTL", "45m")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	// Env wins over file, file wins over defaults.
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, 45*time.Minute, cfg.CacheTTL())
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Server.Port = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Market.LookbackDays = 100 // below the largest indicator window
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.CacheTTL = "six hours"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.Concurrency = 0
	assert.Error(t, cfg.Validate())
}
