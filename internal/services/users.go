// Package services implements the application use cases over the store:
// account management and the per-user profile flows (analysis, routine,
// checker, kit, social logs).
package services

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/mkazarin/skinaid/internal/common"
	"github.com/mkazarin/skinaid/internal/cryptox"
	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/models"
	"github.com/mkazarin/skinaid/internal/store"
)

type UserService struct {
	store  store.Store
	logger logging.Logger
}

func NewUserService(st store.Store, logger logging.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// Register creates a credential entry and an empty application record for a
// new username. An existing username fails with common.ErrorUserExists.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrorEmptyInput
	}

	creds, err := s.store.LoadCredentials(ctx)
	if err != nil {
		return fmt.Errorf("error loading credentials: %w", err)
	}
	if _, ok := creds[username]; ok {
		return common.ErrorUserExists
	}

	salt := common.GenerateRandByteArray(32)
	creds[username] = &models.CredentialRecord{
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
		Salt:         hex.EncodeToString(salt),
	}
	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		return fmt.Errorf("error saving credentials: %w", err)
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("error loading user records: %w", err)
	}
	users[username] = models.NewUserRecord()
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("error saving user records: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	creds, err := s.store.LoadCredentials(ctx)
	if err != nil {
		return false, fmt.Errorf("error loading credentials: %w", err)
	}

	cred, ok := creds[username]
	if !ok {
		return false, nil
	}

	salt, err := hex.DecodeString(cred.Salt)
	if err != nil {
		s.logger.Warn(ctx, "malformed credential salt", "username", username)
		return false, nil
	}
	return cryptox.VerifyPassword(cred.PasswordHash, []byte(password), salt), nil
}
