package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PGSQL_URL", "ENABLE_DB_CHECK", "LOG_LEVEL", "LOG_FORMAT", "DB_MAX_CONNS", "DB_CONNECT_TIMEOUT", "MIGRATE_ON_START"} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.DatabaseURL)
	assert.True(t, cfg.EnableDBCheck)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost:5432/ledger")
	t.Setenv("ENABLE_DB_CHECK", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("DB_CONNECT_TIMEOUT", "750ms")
	t.Setenv("MIGRATE_ON_START", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ledger@localhost:5432/ledger", cfg.DatabaseURL)
	assert.False(t, cfg.EnableDBCheck)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int32(12), cfg.DBMaxConns)
	assert.Equal(t, 750*time.Millisecond, cfg.DBConnectTimeout)
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoadConfig_InvalidTimeoutFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir on Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
