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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchAgents(t *testing.T) {
	payload := `[
		{
			"agent_id": "transaction_analyst",
			"agent_name": "Transaction Analyst",
			"status": "active",
			"is_healthy": true,
			"capabilities": ["transaction_scoring"],
			"supported_tasks": ["score_transaction"],
			"last_heartbeat": "2026-08-01T09:30:00Z"
		},
		{
			"agent_id": "network_analyzer",
			"agent_name": "Network Analyzer",
			"status": "idle",
			"is_healthy": false
		}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/agents/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	agents, err := client.FetchAgents(context.Background())
	if err != nil {
		t.Fatalf("FetchAgents: %v", err)
	}

	if len(agents) != 2 {
		t.Fatalf("got %d agents, want 2", len(agents))
	}
	if agents[0].ID != "transaction_analyst" || !agents[0].Healthy {
		t.Errorf("first agent parsed wrong: %+v", agents[0])
	}
	if agents[0].LastHeartbeat == nil {
		t.Error("expected heartbeat on first agent")
	}
	if agents[1].LastHeartbeat != nil {
		t.Error("expected no heartbeat on second agent")
	}
}

func TestFetchA2AStatus(t *testing.T) {
	payload := `{
		"protocol_version": "1.0",
		"status": "active",
		"total_messages": 1247,
		"messages_last_hour": 45,
		"average_latency_ms": 12,
		"recent_messages": [
			{
				"message_id": "msg-001",
				"from_agent": "orchestrator",
				"to_agent": "transaction_analyst",
				"message_type": "ANALYZE_REQUEST",
				"status": "processed",
				"timestamp": "2026-08-01T09:30:00Z"
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	status, err := client.FetchA2AStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchA2AStatus: %v", err)
	}

	if status.TotalMessages != 1247 {
		t.Errorf("TotalMessages = %d, want 1247", status.TotalMessages)
	}
	if len(status.RecentMessages) != 1 {
		t.Fatalf("got %d recent messages, want 1", len(status.RecentMessages))
	}
	msg := status.RecentMessages[0]
	if msg.FromAgent != "orchestrator" || msg.ToAgent != "transaction_analyst" {
		t.Errorf("message route parsed wrong: %+v", msg)
	}
}

func TestFetchSystemStatus(t *testing.T) {
	payload := `{
		"status": "running",
		"uptime_seconds": 86400.5,
		"agents": {"total_agents": 6, "active_agents": 3, "healthy_agents": 5},
		"rl_training": {"status": "idle", "total_steps": 1200, "buffer_size": 4096, "recent_avg_loss": 0.042},
		"settings": {"model": "gemini-flash-latest", "workflows": ["quick", "standard"]}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	status, err := client.FetchSystemStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchSystemStatus: %v", err)
	}

	if !status.Running() {
		t.Error("status should report running")
	}
	if status.Agents.Total != 6 {
		t.Errorf("Agents.Total = %d, want 6", status.Agents.Total)
	}
	if status.Settings.Model != "gemini-flash-latest" {
		t.Errorf("Settings.Model = %q", status.Settings.Model)
	}
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	if _, err := client.FetchAgents(context.Background()); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestClientEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	if _, err := client.FetchSystemStatus(context.Background()); err == nil {
		t.Error("expected error on empty body")
	}
}

func TestClientUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	if _, err := client.FetchA2AStatus(context.Background()); err == nil {
		t.Error("expected error when backend is unreachable")
	}
}
