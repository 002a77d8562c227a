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

package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fraudshield/fraudwatch/internal/models"
)

// Simulation backs the demo server with a live-looking agent fleet. It is
// seeded from the fallback samples and advanced by Step: message statuses
// progress pending -> delivered -> processed and a fresh message is
// emitted on each step.
type Simulation struct {
	mu       sync.Mutex
	start    time.Time
	agents   []models.Agent
	system   models.SystemStatus
	messages []models.A2AMessage
	total    int
	step     int
}

const simMessageWindow = 50

var simRoutes = []struct {
	from, to, typ string
}{
	{"orchestrator", "transaction_analyst", "ANALYZE_REQUEST"},
	{"transaction_analyst", "pattern_detector", "PATTERN_CHECK"},
	{"pattern_detector", "orchestrator", "PATTERN_RESULT"},
	{"orchestrator", "identity_verifier", "VERIFY_REQUEST"},
	{"identity_verifier", "orchestrator", "VERIFY_RESULT"},
	{"orchestrator", "explanation_generator", "EXPLAIN_REQUEST"},
}

func NewSimulation() *Simulation {
	now := time.Now()
	sim := &Simulation{
		start:  now,
		agents: models.SampleAgents(),
		system: models.SampleSystemStatus(),
	}

	seed := models.SampleA2AStatus()
	sim.total = seed.TotalMessages
	for i := range seed.RecentMessages {
		m := seed.RecentMessages[i]
		m.Timestamp = now.Add(-time.Duration(i+1) * 30 * time.Second)
		sim.messages = append(sim.messages, m)
	}

	for i := range sim.agents {
		if sim.agents[i].LastHeartbeat != nil {
			hb := now
			sim.agents[i].LastHeartbeat = &hb
		}
	}

	return sim
}

func (s *Simulation) Agents() []models.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

func (s *Simulation) A2AStatus() models.A2AStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]models.A2AMessage, 0, 5)
	for i := 0; i < len(s.messages) && i < 5; i++ {
		recent = append(recent, s.messages[i])
	}

	lastHour := 0
	cutoff := time.Now().Add(-time.Hour)
	for _, m := range s.messages {
		if m.Timestamp.After(cutoff) {
			lastHour++
		}
	}

	return models.A2AStatus{
		ProtocolVersion:  "1.0",
		Status:           "active",
		TotalMessages:    s.total,
		MessagesLastHour: lastHour,
		AverageLatencyMs: 10 + s.step%8,
		RecentMessages:   recent,
	}
}

func (s *Simulation) SystemStatus() models.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.system
	status.UptimeSeconds = time.Since(s.start).Seconds()

	counts := models.AgentCounts{Total: len(s.agents)}
	for _, a := range s.agents {
		if a.Status == models.AgentActive || a.Status == models.AgentBusy {
			counts.Active++
		}
		if a.Healthy {
			counts.Healthy++
		}
	}
	status.Agents = counts

	return status
}

// Step advances the simulation and returns the message emitted by this
// step, for broadcast to stream subscribers.
func (s *Simulation) Step() models.A2AMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		switch s.messages[i].Status {
		case models.MessagePending:
			s.messages[i].Status = models.MessageDelivered
		case models.MessageDelivered:
			s.messages[i].Status = models.MessageProcessed
		}
	}

	route := simRoutes[s.step%len(simRoutes)]
	s.step++
	s.total++

	msg := models.A2AMessage{
		ID:        uuid.NewString(),
		FromAgent: route.from,
		ToAgent:   route.to,
		Type:      route.typ,
		Status:    models.MessagePending,
		Timestamp: time.Now(),
	}

	s.messages = append([]models.A2AMessage{msg}, s.messages...)
	if len(s.messages) > simMessageWindow {
		s.messages = s.messages[:simMessageWindow]
	}

	now := time.Now()
	for i := range s.agents {
		if s.agents[i].Healthy {
			hb := now
			s.agents[i].LastHeartbeat = &hb
		}
	}

	return msg
}
