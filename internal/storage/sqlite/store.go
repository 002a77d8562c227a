/*
 * Copyright (C) 2026 FraudShield Labs
 *
 * This file is part of fraudwatch.
 *
 * fraudwatch is free software: you can redistribute it and/or modify
 * it under the terms of the MIT License as described in the
 * LICENSE file distributed with this project.
 *
 * fraudwatch is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 * MIT License for more details.
 *
 * You should have received a copy of the MIT License
 * along with fraudwatch. If not, see the LICENSE file in the project root.
 */

package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fraudshield/fraudwatch/internal/storage"
)

type Store struct {
	db *sql.DB
}

func New(dataDir string) (storage.Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fraudwatch.db")
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	store := &Store{db: conn}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) GetStats() (*storage.Stats, error) {
	stats := &storage.Stats{}

	s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&stats.SnapshotsTotal)
	s.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&stats.MessagesTotal)
	s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE status = 'failed'`).Scan(&stats.MessagesFailed)

	var first sql.NullTime
	s.db.QueryRow(`SELECT MIN(recorded_at) FROM snapshots`).Scan(&first)
	if first.Valid {
		stats.FirstObservedAt = first.Time
	}

	return stats, nil
}
