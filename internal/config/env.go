package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with SKINAID_* environment variables. A .env file
// in the working directory is loaded first when present; a missing file is
// not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SKINAID_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv("SKINAID_CREDENTIALS_FILE"); ok {
		cfg.CredentialsFile = v
	}
	if v, ok := os.LookupEnv("SKINAID_DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := os.LookupEnv("SKINAID_REPORTS_DIR"); ok {
		cfg.ReportsDir = v
	}
	if v, ok := os.LookupEnv("SKINAID_STORAGE_BACKEND"); ok {
		cfg.StorageBackend = v
	}
	if v, ok := os.LookupEnv("SKINAID_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
}
