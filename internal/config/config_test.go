package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "PORT", "APP_ENV", "DB_TLS_SKIP_VERIFY", "SHUTDOWN_TIMEOUT", "CORS_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr())
	assert.True(t, cfg.DBTLSSkipVerify)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/salon")
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/salon", cfg.DBUrl)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	os.Unsetenv("PORT")
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Cleanup(func() { os.Unsetenv("PORT") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nDATABASE_URL=postgres://from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	// the real environment takes precedence over the file
	assert.Equal(t, "postgres://from-env", cfg.DBUrl)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
