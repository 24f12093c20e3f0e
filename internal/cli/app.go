// Package cli implements the interactive SkinAid console: a small REPL over
// the account and profile services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mkazarin/skinaid/internal/config"
	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/services"
	"github.com/mkazarin/skinaid/internal/store"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	users    *services.UserService
	profile  *services.ProfileService
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	var (
		st  store.Store
		err error
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		st, err = store.NewPostgresStore(cfg.DatabaseDSN, logger)
	case config.BackendFile:
		st, err = store.NewFileStore(cfg.CredentialsFile, cfg.DataFile, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		users:   services.NewUserService(st, logger),
		profile: services.NewProfileService(st, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
