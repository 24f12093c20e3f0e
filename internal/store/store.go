// Package store persists the two SkinAid namespaces: credential records and
// per-user application records. A Store works in whole namespaces. Load
// returns the full mapping, creating a persisted default when the backing
// data is absent and falling back to an empty default when it is malformed;
// Save overwrites the namespace completely. Callers read-modify-write the
// full in-memory structure.
package store

import (
	"context"

	"github.com/mkazarin/skinaid/internal/models"
)

// Credentials maps username to credential record.
type Credentials map[string]*models.CredentialRecord

// Users maps username to application record.
type Users map[string]*models.UserRecord

type Store interface {
	LoadCredentials(ctx context.Context) (Credentials, error)
	SaveCredentials(ctx context.Context, creds Credentials) error
	LoadUsers(ctx context.Context) (Users, error)
	SaveUsers(ctx context.Context, users Users) error
}
