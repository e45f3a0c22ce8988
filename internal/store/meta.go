package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SetMeta stores a key/value pair in the meta table.
func (db *DB) SetMeta(key, value string) error {
	return setMeta(db, key, value, time.Now())
}

// GetMeta retrieves a value from the meta table. Returns "" if not found.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func setMeta(e execer, key, value string, at time.Time) error {
	_, err := e.Exec(`
		INSERT INTO meta (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, at.UnixMilli())
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}
