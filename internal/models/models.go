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

package models

import "time"

// AgentStatus is the lifecycle state reported by the backend for a
// detection agent. Values outside this set are rendered as unknown, never
// rejected.
type AgentStatus string

const (
	AgentActive  AgentStatus = "active"
	AgentBusy    AgentStatus = "busy"
	AgentIdle    AgentStatus = "idle"
	AgentError   AgentStatus = "error"
	AgentUnknown AgentStatus = "unknown"
)

// MessageStatus is the delivery state of an A2A protocol message.
type MessageStatus string

const (
	MessagePending   MessageStatus = "pending"
	MessageDelivered MessageStatus = "delivered"
	MessageProcessed MessageStatus = "processed"
	MessageFailed    MessageStatus = "failed"
)

// Agent is a read-only status snapshot of one detection agent. The UI
// never mutates it.
type Agent struct {
	ID             string      `json:"agent_id"`
	Name           string      `json:"agent_name"`
	Status         AgentStatus `json:"status"`
	Healthy        bool        `json:"is_healthy"`
	Capabilities   []string    `json:"capabilities"`
	SupportedTasks []string    `json:"supported_tasks"`
	LastHeartbeat  *time.Time  `json:"last_heartbeat,omitempty"`
}

// A2AMessage is one inter-agent protocol message, ordered by recency in
// every payload that carries it.
type A2AMessage struct {
	ID        string        `json:"message_id"`
	FromAgent string        `json:"from_agent"`
	ToAgent   string        `json:"to_agent"`
	Type      string        `json:"message_type"`
	Status    MessageStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// A2AStatus is the protocol-level snapshot for the A2A card.
type A2AStatus struct {
	ProtocolVersion  string       `json:"protocol_version"`
	Status           string       `json:"status"`
	TotalMessages    int          `json:"total_messages"`
	MessagesLastHour int          `json:"messages_last_hour"`
	AverageLatencyMs int          `json:"average_latency_ms"`
	RecentMessages   []A2AMessage `json:"recent_messages"`
}

// AgentCounts summarizes the registry for the system status card.
type AgentCounts struct {
	Total   int `json:"total_agents"`
	Active  int `json:"active_agents"`
	Healthy int `json:"healthy_agents"`
}

// TrainingStatus is the RL training subsystem summary.
type TrainingStatus struct {
	Status        string  `json:"status"`
	TotalSteps    int     `json:"total_steps"`
	BufferSize    int     `json:"buffer_size"`
	RecentAvgLoss float64 `json:"recent_avg_loss"`
}

// Settings carries the configuration metadata shown on the system card.
type Settings struct {
	Model     string   `json:"model"`
	Workflows []string `json:"workflows"`
}

// SystemStatus is the global system snapshot.
type SystemStatus struct {
	Status        string         `json:"status"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Agents        AgentCounts    `json:"agents"`
	Training      TrainingStatus `json:"rl_training"`
	Settings      Settings       `json:"settings"`
}

// Running reports whether the overall status counts as healthy.
func (s SystemStatus) Running() bool {
	return s.Status == "running" || s.Status == "healthy"
}
