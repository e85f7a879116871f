package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-menu/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DB_DRIVER", "DB_DSN", "LOG_LEVEL",
		"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "restaurant.db", cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=menu dbname=menu")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "host=localhost user=menu dbname=menu", cfg.DBDSN)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DB_DRIVER", "oracle"},
		{"GIN_MODE", "turbo"},
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_BURST", "0"},
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "restaurant.db?_foreign_keys=on", sqliteDSN("restaurant.db"))
	assert.Equal(t, "file:x.db?cache=shared&_foreign_keys=on", sqliteDSN("file:x.db?cache=shared"))
	assert.Equal(t, "x.db?_foreign_keys=off", sqliteDSN("x.db?_foreign_keys=off"))
}

func TestInitDBSQLiteCreatesFile(t *testing.T) {
	path := t.TempDir() + "/menu.db"
	cfg := &Config{DBDriver: DriverSQLite, DBDSN: path}

	db, err := InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

// inDir runs the rest of the test with dir as working directory, where
// godotenv looks for .env.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func captureInfoLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	utils.InfoLogger.SetOutput(&buf)
	t.Cleanup(func() {
		utils.InfoLogger.SetOutput(os.Stdout)
		utils.InfoLogger.SetLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestLoadWarnsOnMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))
	inDir(t, dir)
	buf := captureInfoLog(t)

	t.Setenv("LOG_LEVEL", "info")
	_, err := Load()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "malformed .env")
}

func TestLoadMissingDotEnvLogsAtDebug(t *testing.T) {
	inDir(t, t.TempDir())
	buf := captureInfoLog(t)

	t.Setenv("LOG_LEVEL", "debug")
	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, utils.InfoLogger.GetLevel())
	assert.Contains(t, buf.String(), ".env file not found")
	assert.NotContains(t, buf.String(), "level=warning")
}

func TestLoadMissingDotEnvQuietAtInfo(t *testing.T) {
	inDir(t, t.TempDir())
	buf := captureInfoLog(t)

	t.Setenv("LOG_LEVEL", "info")
	_, err := Load()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
