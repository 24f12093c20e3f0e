package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkazarin/skinaid/internal/dbx"
	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/models"
	"github.com/mkazarin/skinaid/internal/store/migrations"
)

// PostgresStore keeps each namespace as a flat username -> jsonb document
// table, mirroring the file layout. No relational queries are exposed:
// loads read the whole table and saves overwrite it completely inside one
// transaction.
type PostgresStore struct {
	db     *sql.DB
	logger logging.Logger
}

func NewPostgresStore(dsn string, logger logging.Logger) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &PostgresStore{db: db, logger: logger}
	if err := s.runMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return s, nil
}

// NewPostgresStoreWithDB wraps an existing connection without running
// migrations. Used by tests.
func NewPostgresStoreWithDB(db *sql.DB, logger logging.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, s.db, ".")
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) LoadCredentials(ctx context.Context) (Credentials, error) {
	out := Credentials{}
	err := s.loadTable(ctx, "credentials", func(username string, data []byte) error {
		rec := &models.CredentialRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return err
		}
		out[username] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) SaveCredentials(ctx context.Context, creds Credentials) error {
	rows := make(map[string]any, len(creds))
	for username, rec := range creds {
		rows[username] = rec
	}
	return s.saveTable(ctx, "credentials", rows)
}

func (s *PostgresStore) LoadUsers(ctx context.Context) (Users, error) {
	out := Users{}
	err := s.loadTable(ctx, "user_records", func(username string, data []byte) error {
		rec := models.NewUserRecord()
		if err := json.Unmarshal(data, rec); err != nil {
			return err
		}
		out[username] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) SaveUsers(ctx context.Context, users Users) error {
	rows := make(map[string]any, len(users))
	for username, rec := range users {
		rows[username] = rec
	}
	return s.saveTable(ctx, "user_records", rows)
}

// loadTable streams every row of one namespace table. A row whose document
// does not unmarshal is skipped with a warning so one malformed record does
// not block the rest of the namespace.
func (s *PostgresStore) loadTable(ctx context.Context, table string, decode func(username string, data []byte) error) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT username, record FROM %s`, table))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var username string
		var data []byte
		if err := rows.Scan(&username, &data); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if err := decode(username, data); err != nil {
			s.logger.Warn(ctx, "skipping malformed record",
				"table", table, "username", username, "error", err.Error())
		}
	}
	return rows.Err()
}

// saveTable overwrites one namespace table with the given rows in a single
// transaction, matching the whole-namespace overwrite contract of the file
// backend.
func (s *PostgresStore) saveTable(ctx context.Context, table string, rows map[string]any) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		for username, rec := range rows {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshal record for %q: %w", username, err)
			}
			query := fmt.Sprintf(`INSERT INTO %s (username, record) VALUES ($1, $2)`, table)
			if _, err := tx.ExecContext(ctx, query, username, data); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return nil
	})
}
