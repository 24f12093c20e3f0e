package config

import (
	"flag"
	"os"

	"github.com/mkazarin/skinaid/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory for the file backend
//	-r string   reports output directory
//	-s string   storage backend (file or postgres)
//	-dsn string PostgreSQL connection string
//
// os.Args is pre-filtered to the flags handled here so the -c/-config flag
// consumed by the JSON layer does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-s", "-dsn"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.ReportsDir, "r", cfg.ReportsDir, "reports output directory")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (file or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "postgres connection string")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
