package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mkazarin/skinaid/internal/filex"
	"github.com/mkazarin/skinaid/internal/logging"
)

// FileStore keeps each namespace in a human-readable indented JSON file.
// Writes go through a temp-file-and-rename so a failed save leaves the
// previous content intact.
type FileStore struct {
	credentialsPath string
	usersPath       string
	logger          logging.Logger
}

func NewFileStore(credentialsPath, usersPath string, logger logging.Logger) (*FileStore, error) {
	for _, p := range []string{credentialsPath, usersPath} {
		if err := filex.EnsureDir(filepath.Dir(p)); err != nil {
			return nil, err
		}
	}
	return &FileStore{credentialsPath: credentialsPath, usersPath: usersPath, logger: logger}, nil
}

func (s *FileStore) LoadCredentials(ctx context.Context) (Credentials, error) {
	return loadFile(ctx, s, s.credentialsPath, func() Credentials { return Credentials{} })
}

func (s *FileStore) SaveCredentials(ctx context.Context, creds Credentials) error {
	return s.saveFile(s.credentialsPath, creds)
}

func (s *FileStore) LoadUsers(ctx context.Context) (Users, error) {
	return loadFile(ctx, s, s.usersPath, func() Users { return Users{} })
}

func (s *FileStore) SaveUsers(ctx context.Context, users Users) error {
	return s.saveFile(s.usersPath, users)
}

// loadFile reads one namespace. An absent file creates and persists the
// default; malformed content logs a warning and yields the default so a
// corrupted store never takes the application down.
func loadFile[T any](ctx context.Context, s *FileStore, path string, def func() T) (T, error) {
	out := def()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.saveFile(path, out); err != nil {
			return out, err
		}
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Warn(ctx, "store content is malformed, falling back to empty default",
			"path", path, "error", err.Error())
		return def(), nil
	}
	return out, nil
}

func (s *FileStore) saveFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
