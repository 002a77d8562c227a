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
	"testing"

	"github.com/fraudshield/fraudwatch/internal/models"
)

func TestSimulationSeeding(t *testing.T) {
	sim := NewSimulation()

	agents := sim.Agents()
	if len(agents) == 0 {
		t.Fatal("simulation should seed agents")
	}

	status := sim.A2AStatus()
	if status.TotalMessages == 0 {
		t.Error("simulation should seed a message total")
	}
	if len(status.RecentMessages) == 0 {
		t.Error("simulation should seed recent messages")
	}

	system := sim.SystemStatus()
	if !system.Running() {
		t.Error("seeded system should report running")
	}
	if system.Agents.Total != len(agents) {
		t.Errorf("Agents.Total = %d, want %d", system.Agents.Total, len(agents))
	}
}

func TestSimulationStep(t *testing.T) {
	sim := NewSimulation()
	before := sim.A2AStatus()

	msg := sim.Step()
	if msg.ID == "" {
		t.Error("emitted message has no id")
	}
	if msg.Status != models.MessagePending {
		t.Errorf("emitted message status = %q, want pending", msg.Status)
	}

	after := sim.A2AStatus()
	if after.TotalMessages != before.TotalMessages+1 {
		t.Errorf("TotalMessages = %d, want %d", after.TotalMessages, before.TotalMessages+1)
	}
	if after.RecentMessages[0].ID != msg.ID {
		t.Error("emitted message should be the newest recent message")
	}
}

func TestSimulationStatusProgression(t *testing.T) {
	sim := NewSimulation()
	msg := sim.Step()

	sim.Step()
	sim.Step()

	// After two further steps the pending message has progressed through
	// delivered to processed.
	for _, m := range sim.A2AStatus().RecentMessages {
		if m.ID == msg.ID {
			if m.Status != models.MessageProcessed {
				t.Errorf("status = %q, want processed", m.Status)
			}
			return
		}
	}
	t.Fatal("stepped message fell out of the recent window too early")
}

func TestSimulationStepEmitsUniqueIDs(t *testing.T) {
	sim := NewSimulation()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		msg := sim.Step()
		if seen[msg.ID] {
			t.Fatalf("duplicate message id %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}
