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

package views

import (
	"time"

	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/storage"
)

type TickMsg time.Time
type SpinnerTickMsg struct{}

// Fetch results. A nil payload means the fetch resolved without data
// (including errors); the receiving card falls back to its sample.
type AgentsMsg struct {
	Agents []models.Agent
}

type A2AStatusMsg struct {
	Status *models.A2AStatus
}

type SystemStatusMsg struct {
	Status *models.SystemStatus
}

// StreamMsg is one protocol message pushed over the live feed.
type StreamMsg models.A2AMessage

type HistoryMsg struct {
	Snapshots []storage.SnapshotRecord
	Messages  []models.A2AMessage
	Stats     *storage.Stats
}
