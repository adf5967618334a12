package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Backend.LongRequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, 2*time.Second, cfg.Worker.FlushInterval)
	assert.Equal(t, "admin-audit-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 30*time.Minute, cfg.Pages.StateTTL)
}

func TestLoadFrom_EnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "BACKEND_API_URL=http://travel-api:9000/\nAPI_PORT=9090\nLIST_CACHE_TTL=15\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BACKEND_TIMEOUT", "3")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://travel-api:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Cache.ListCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Backend.RequestTimeout)
}
