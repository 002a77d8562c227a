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

// Fallback datasets rendered when a fetch resolves without data. They are
// fixed values so a card that falls back renders identically on every
// call. The demo backend seeds its simulation from them too.

var sampleTime = time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

func SampleAgents() []Agent {
	hb := sampleTime
	return []Agent{
		{
			ID:             "orchestrator",
			Name:           "Orchestrator",
			Status:         AgentActive,
			Healthy:        true,
			Capabilities:   []string{"routing", "workflow_planning"},
			SupportedTasks: []string{"analyze_case", "dispatch_task"},
			LastHeartbeat:  &hb,
		},
		{
			ID:             "transaction_analyst",
			Name:           "Transaction Analyst",
			Status:         AgentActive,
			Healthy:        true,
			Capabilities:   []string{"transaction_scoring", "risk_calculation"},
			SupportedTasks: []string{"score_transaction", "calculate_risk"},
			LastHeartbeat:  &hb,
		},
		{
			ID:             "pattern_detector",
			Name:           "Pattern Detector",
			Status:         AgentBusy,
			Healthy:        true,
			Capabilities:   []string{"pattern_mining", "anomaly_detection"},
			SupportedTasks: []string{"detect_patterns"},
			LastHeartbeat:  &hb,
		},
		{
			ID:             "identity_verifier",
			Name:           "Identity Verifier",
			Status:         AgentIdle,
			Healthy:        true,
			Capabilities:   []string{"identity_checks", "sanctions_screening"},
			SupportedTasks: []string{"verify_identity", "check_sanctions"},
			LastHeartbeat:  &hb,
		},
		{
			ID:             "network_analyzer",
			Name:           "Network Analyzer",
			Status:         AgentIdle,
			Healthy:        false,
			Capabilities:   []string{"graph_analysis"},
			SupportedTasks: []string{"analyze_network"},
		},
		{
			ID:             "explanation_generator",
			Name:           "Explanation Generator",
			Status:         AgentActive,
			Healthy:        true,
			Capabilities:   []string{"report_generation"},
			SupportedTasks: []string{"generate_explanation"},
			LastHeartbeat:  &hb,
		},
	}
}

func SampleA2AStatus() A2AStatus {
	return A2AStatus{
		ProtocolVersion:  "1.0",
		Status:           "active",
		TotalMessages:    1247,
		MessagesLastHour: 45,
		AverageLatencyMs: 12,
		RecentMessages: []A2AMessage{
			{
				ID:        "msg-001",
				FromAgent: "orchestrator",
				ToAgent:   "transaction_analyst",
				Type:      "ANALYZE_REQUEST",
				Status:    MessageProcessed,
				Timestamp: sampleTime,
			},
			{
				ID:        "msg-002",
				FromAgent: "transaction_analyst",
				ToAgent:   "pattern_detector",
				Type:      "PATTERN_CHECK",
				Status:    MessageProcessed,
				Timestamp: sampleTime.Add(-30 * time.Second),
			},
			{
				ID:        "msg-003",
				FromAgent: "pattern_detector",
				ToAgent:   "orchestrator",
				Type:      "PATTERN_RESULT",
				Status:    MessageDelivered,
				Timestamp: sampleTime.Add(-75 * time.Second),
			},
		},
	}
}

func SampleSystemStatus() SystemStatus {
	return SystemStatus{
		Status:        "running",
		UptimeSeconds: 86400,
		Agents: AgentCounts{
			Total:   6,
			Active:  3,
			Healthy: 5,
		},
		Training: TrainingStatus{
			Status:        "idle",
			TotalSteps:    1200,
			BufferSize:    4096,
			RecentAvgLoss: 0.042,
		},
		Settings: Settings{
			Model:     "gemini-flash-latest",
			Workflows: []string{"quick", "standard", "investigation", "batch"},
		},
	}
}
