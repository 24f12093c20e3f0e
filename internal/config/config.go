// Package config resolves the runtime settings for the SkinAid CLI.
// Sources are layered; later sources take precedence:
// defaults -> environment (.env supported) -> JSON file -> flags.
package config

import "path/filepath"

// Storage backend names accepted in configuration.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds the runtime settings.
//
// Fields:
//   - DataDir: root directory for the file backend.
//   - CredentialsFile / DataFile: namespace file paths; when not set
//     explicitly they are derived from DataDir.
//   - ReportsDir: where generated text reports are written.
//   - StorageBackend: "file" or "postgres".
//   - DatabaseDSN: PostgreSQL connection string (postgres backend).
type Config struct {
	DataDir         string
	CredentialsFile string
	DataFile        string
	ReportsDir      string
	StorageBackend  string
	DatabaseDSN     string
}

// LoadDefaults populates c with the local-first file layout. The namespace
// file paths stay empty until resolve derives them, so a DataDir override
// from any later source carries through.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.ReportsDir = "reports"
	c.StorageBackend = BackendFile
}

// resolve fills the namespace file paths from DataDir unless a source set
// them explicitly.
func (c *Config) resolve() {
	if c.CredentialsFile == "" {
		c.CredentialsFile = filepath.Join(c.DataDir, "users.json")
	}
	if c.DataFile == "" {
		c.DataFile = filepath.Join(c.DataDir, "data.json")
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.resolve()
	return cfg
}
