package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NIYAM_SERVER_PORT", "9090")
	t.Setenv("NIYAM_SERVER_ENVIRONMENT", "production")
	t.Setenv("NIYAM_SERVER_READ_TIMEOUT", "30s")
	t.Setenv("NIYAM_LOG_LEVEL", "warn")
	t.Setenv("NIYAM_LOG_FORMAT", "json")
	t.Setenv("NIYAM_CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("NIYAM_EXPORT_DIR", "/tmp/filings")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port, "bare port gets the colon prefix")
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/tmp/filings", cfg.Export.Dir)
}

func TestLoad_PortAlreadyPrefixed(t *testing.T) {
	t.Setenv("NIYAM_SERVER_PORT", ":7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestServerConfig_AddrWithHost(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: ":8080"}
	assert.Equal(t, "127.0.0.1:8080", s.Addr())
}
