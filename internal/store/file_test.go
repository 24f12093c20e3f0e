package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/models"
)

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "users.json"), filepath.Join(dir, "data.json"), quietLogger())
	require.NoError(t, err)
	return s, dir
}

func TestFileStoreCreatesDefaultsWhenAbsent(t *testing.T) {
	s, dir := newFileStore(t)
	ctx := context.Background()

	creds, err := s.LoadCredentials(ctx)
	require.NoError(t, err)
	require.Empty(t, creds)

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	// Defaults were persisted.
	require.FileExists(t, filepath.Join(dir, "users.json"))
	require.FileExists(t, filepath.Join(dir, "data.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, _ := newFileStore(t)
	ctx := context.Background()

	creds := Credentials{"alice": {PasswordHash: "abcd", Salt: "ef01"}}
	require.NoError(t, s.SaveCredentials(ctx, creds))

	rec := models.NewUserRecord()
	rec.Points = 15
	rec.Onboarding = &models.Onboarding{FullName: "Alice", Age: 30, SkinType: models.SkinTypeDry}
	rec.Day("2026-08-22").IsComplete = true
	require.NoError(t, s.SaveUsers(ctx, Users{"alice": rec}))

	gotCreds, err := s.LoadCredentials(ctx)
	require.NoError(t, err)
	require.Equal(t, creds, gotCreds)

	gotUsers, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 15, gotUsers["alice"].Points)
	require.Equal(t, "Alice", gotUsers["alice"].Onboarding.FullName)
	require.True(t, gotUsers["alice"].DailyCompletion["2026-08-22"].IsComplete)
}

func TestFileStoreMalformedContentFallsBack(t *testing.T) {
	s, dir := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte("{not json"), 0o600))

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestFileStoreSaveOverwritesWholeNamespace(t *testing.T) {
	s, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUsers(ctx, Users{"alice": models.NewUserRecord(), "bob": models.NewUserRecord()}))
	require.NoError(t, s.SaveUsers(ctx, Users{"alice": models.NewUserRecord()}))

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Contains(t, users, "alice")
}
