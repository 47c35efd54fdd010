package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// KV implements the blob operations of Provider over the collections table
// shared by the SQL backends. Queries are written with ? placeholders and
// rebound for the driver.
type KV struct {
	db *sqlx.DB
}

func NewKV(db *sqlx.DB) *KV {
	return &KV{db: db}
}

func (kv *KV) Read(key string) ([]byte, error) {
	if kv == nil || kv.db == nil {
		return nil, ErrNotLoaded
	}
	var data []byte
	err := kv.db.Get(&data, kv.db.Rebind("SELECT data FROM collections WHERE name = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return data, nil
}

func (kv *KV) Write(key string, data []byte) error {
	if kv == nil || kv.db == nil {
		return ErrNotLoaded
	}
	query := kv.db.Rebind(`
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`)
	if _, err := kv.db.Exec(query, key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(key string) error {
	if kv == nil || kv.db == nil {
		return ErrNotLoaded
	}
	if _, err := kv.db.Exec(kv.db.Rebind("DELETE FROM collections WHERE name = ?"), key); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Keys() ([]string, error) {
	if kv == nil || kv.db == nil {
		return nil, ErrNotLoaded
	}
	keys := []string{}
	if err := kv.db.Select(&keys, "SELECT name FROM collections ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return keys, nil
}
