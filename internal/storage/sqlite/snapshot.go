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
	"time"

	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/storage"
)

func (s *Store) RecordSnapshot(status *models.SystemStatus) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (recorded_at, status, uptime_seconds, agents_total, agents_active, agents_healthy, model)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, time.Now(), status.Status, status.UptimeSeconds,
		status.Agents.Total, status.Agents.Active, status.Agents.Healthy,
		status.Settings.Model)
	return err
}

func (s *Store) GetRecentSnapshots(limit int) ([]storage.SnapshotRecord, error) {
	rows, err := s.db.Query(`
		SELECT recorded_at, status, uptime_seconds, agents_total, agents_active, agents_healthy, model
		FROM snapshots
		ORDER BY recorded_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []storage.SnapshotRecord
	for rows.Next() {
		var r storage.SnapshotRecord
		if err := rows.Scan(&r.RecordedAt, &r.Status, &r.UptimeSeconds,
			&r.AgentsTotal, &r.AgentsActive, &r.AgentsHealthy, &r.Model); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
