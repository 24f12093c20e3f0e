package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.resolve()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "users.json"), cfg.CredentialsFile)
	assert.Equal(t, filepath.Join("data", "data.json"), cfg.DataFile)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestDataDirOverrideDerivesFilePaths(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"skinaid", "-d", "/var/lib/skinaid"}

	cfg := LoadConfig()

	assert.Equal(t, "/var/lib/skinaid", cfg.DataDir)
	assert.Equal(t, filepath.Join("/var/lib/skinaid", "users.json"), cfg.CredentialsFile)
	assert.Equal(t, filepath.Join("/var/lib/skinaid", "data.json"), cfg.DataFile)
}

func TestExplicitFilePathsBeatDataDir(t *testing.T) {
	t.Setenv("SKINAID_DATA_FILE", "/elsewhere/data.json")

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"skinaid", "-d", "/var/lib/skinaid"}

	cfg := LoadConfig()

	assert.Equal(t, "/elsewhere/data.json", cfg.DataFile)
	assert.Equal(t, filepath.Join("/var/lib/skinaid", "users.json"), cfg.CredentialsFile)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SKINAID_STORAGE_BACKEND", BackendPostgres)
	t.Setenv("SKINAID_DATABASE_DSN", "postgres://localhost/skinaid")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "postgres://localhost/skinaid", cfg.DatabaseDSN)
	// Untouched fields keep their defaults.
	assert.Equal(t, "data", cfg.DataDir)
}

func TestParseJsonOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"reports_dir": "/tmp/reports", "data_dir": "/tmp/skinaid"}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"skinaid", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/reports", cfg.ReportsDir)
	assert.Equal(t, "/tmp/skinaid", cfg.DataDir)
	// Fields missing from the file are untouched.
	assert.Equal(t, BackendFile, cfg.StorageBackend)
}

func TestParseFlagsOverride(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"skinaid", "-s", BackendPostgres, "-dsn", "postgres://db/skinaid", "-r", "out"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "postgres://db/skinaid", cfg.DatabaseDSN)
	assert.Equal(t, "out", cfg.ReportsDir)
}

func TestLoadConfigLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage_backend": "file", "reports_dir": "json-reports"}`), 0o600))

	t.Setenv("SKINAID_REPORTS_DIR", "env-reports")

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	// Flags beat JSON which beats the environment.
	os.Args = []string{"skinaid", "-c", path, "-d", "flag-data"}

	cfg := LoadConfig()

	assert.Equal(t, "flag-data", cfg.DataDir)
	assert.Equal(t, "json-reports", cfg.ReportsDir)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
}
