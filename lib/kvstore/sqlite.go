package kvstore

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT NOT NULL PRIMARY KEY,
    value BLOB NOT NULL
);
`

type Sqlite struct {
	db *sql.DB
}

func NewSqlite(db *sql.DB) (*Sqlite, error) {
	_, err := db.Exec(sqliteSchema)
	if err != nil {
		return nil, err
	}
	return &Sqlite{db: db}, nil
}

func (s *Sqlite) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)
	var value []byte
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Sqlite) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Sqlite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return err
}
