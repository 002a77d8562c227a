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
	"github.com/fraudshield/fraudwatch/internal/models"
)

// SaveMessages upserts observed messages keyed by message id, so a
// message seen again with an advanced delivery status keeps the newest
// one.
func (s *Store) SaveMessages(msgs []models.A2AMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO messages (message_id, from_agent, to_agent, message_type, status, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(message_id) DO UPDATE SET status = excluded.status
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range msgs {
		if m.ID == "" {
			continue
		}
		if _, err := stmt.Exec(m.ID, m.FromAgent, m.ToAgent, m.Type, m.Status, m.Timestamp); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetRecentMessages(limit int) ([]models.A2AMessage, error) {
	rows, err := s.db.Query(`
		SELECT message_id, from_agent, to_agent, message_type, status, timestamp
		FROM messages
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []models.A2AMessage
	for rows.Next() {
		var m models.A2AMessage
		if err := rows.Scan(&m.ID, &m.FromAgent, &m.ToAgent, &m.Type, &m.Status, &m.Timestamp); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
