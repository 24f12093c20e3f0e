package config

import (
	"encoding/json"
	"os"

	"github.com/mkazarin/skinaid/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file override the current Config.
type JsonConfig struct {
	DataDir         string `json:"data_dir"`
	CredentialsFile string `json:"credentials_file"`
	DataFile        string `json:"data_file"`
	ReportsDir      string `json:"reports_dir"`
	StorageBackend  string `json:"storage_backend"`
	DatabaseDSN     string `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic; configuration happens before any user state is touched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.CredentialsFile != "" {
		cfg.CredentialsFile = jc.CredentialsFile
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.ReportsDir != "" {
		cfg.ReportsDir = jc.ReportsDir
	}
	if jc.StorageBackend != "" {
		cfg.StorageBackend = jc.StorageBackend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
