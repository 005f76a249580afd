package cleanblog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv makes sure values from the developer's shell do not leak in.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SITE_NAME", "SITE_AUTHOR", "ADDR", "SQLITE__PATH", "SECRET_KEY", "COOKIE_SECURE", "LOG_LEVEL"} {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	data := []byte(`
SECRET_KEY=file-secret
SQLITE__PATH=sqlite:///instance/posts.db
ADDR=:8080
SITE_NAME="Jo's Blog"
SITE_AUTHOR=Jo
COOKIE_SECURE=true
LOG_LEVEL=debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.SessionSecret)
	assert.Equal(t, "instance/posts.db", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "Jo's Blog", cfg.Name)
	assert.Equal(t, "Jo", cfg.Author)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SECRET_KEY=file-secret\nADDR=:8080\n"), 0o600))
	t.Setenv("SECRET_KEY", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SessionSecret)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Blog", cfg.Name)
	assert.Equal(t, ":5003", cfg.Addr)
	assert.Equal(t, "data/posts.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SessionSecret)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "posts.db", sqlitePath("sqlite:///posts.db"))
	assert.Equal(t, "/var/lib/blog/posts.db", sqlitePath("sqlite:////var/lib/blog/posts.db"))
	assert.Equal(t, "data/posts.db", sqlitePath(" data/posts.db "))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug": log.DEBUG,
		"":      log.INFO,
		"INFO":  log.INFO,
		"warn":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestInitRequiresSecret(t *testing.T) {
	app := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "posts.db")}, ViewFuncs{})

	err := app.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SessionSecret is required")
	assert.Nil(t, app.Store)
}
