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

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at DATETIME NOT NULL,
	status TEXT DEFAULT 'unknown',
	uptime_seconds REAL DEFAULT 0,
	agents_total INTEGER DEFAULT 0,
	agents_active INTEGER DEFAULT 0,
	agents_healthy INTEGER DEFAULT 0,
	model TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS messages (
	message_id TEXT PRIMARY KEY,
	from_agent TEXT NOT NULL,
	to_agent TEXT NOT NULL,
	message_type TEXT DEFAULT '',
	status TEXT DEFAULT 'pending',
	timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_recorded ON snapshots(recorded_at DESC);
CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp DESC);
`
