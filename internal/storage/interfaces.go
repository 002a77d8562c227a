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

package storage

import (
	"time"

	"github.com/fraudshield/fraudwatch/internal/models"
)

// Store records what the dashboard observed: fetched system snapshots and
// protocol messages. It is local history only; nothing is ever written
// back to the backend.
type Store interface {
	RecordSnapshot(status *models.SystemStatus) error
	GetRecentSnapshots(limit int) ([]SnapshotRecord, error)

	SaveMessages(msgs []models.A2AMessage) error
	GetRecentMessages(limit int) ([]models.A2AMessage, error)

	GetStats() (*Stats, error)
	Close() error
}

// SnapshotRecord is one recorded system snapshot with its observation
// time.
type SnapshotRecord struct {
	RecordedAt    time.Time
	Status        string
	UptimeSeconds float64
	AgentsTotal   int
	AgentsActive  int
	AgentsHealthy int
	Model         string
}

type Stats struct {
	SnapshotsTotal  int
	MessagesTotal   int
	MessagesFailed  int
	FirstObservedAt time.Time
}
