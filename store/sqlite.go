// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/emer/synapse/synapse"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists synapse records in a SQLite database file, one row
// per synapse with the codec envelope as the payload.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveSynapse(ctx context.Context, sy *synapse.Synapse) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeSynapse(sy)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO synapses (id, schema_version, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload
	`, sy.Name(), CurrentSchemaVersion, payload)
	return err
}

func (s *SQLiteStore) GetSynapse(ctx context.Context, name string) (*synapse.Synapse, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM synapses WHERE id = ?`, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	sy, err := DecodeSynapse(payload)
	if err != nil {
		return nil, false, fmt.Errorf("decode synapse %s: %w", name, err)
	}
	return sy, true, nil
}

func (s *SQLiteStore) DeleteSynapse(ctx context.Context, name string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM synapses WHERE id = ?`, name)
	return err
}

func (s *SQLiteStore) ListSynapses(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM synapses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var nm string
		if err := rows.Scan(&nm); err != nil {
			return nil, err
		}
		names = append(names, nm)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS synapses (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
