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

package components

import (
	"strings"
	"testing"
)

func TestBadgeKnownStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"active", "ACTIVE"},
		{"busy", "BUSY"},
		{"idle", "IDLE"},
		{"error", "ERROR"},
		{"pending", "PENDING"},
		{"delivered", "DELIVERED"},
		{"processed", "PROCESSED"},
		{"failed", "FAILED"},
		{"running", "RUNNING"},
		{"degraded", "DEGRADED"},
	}

	for _, tt := range tests {
		if got := Badge(tt.status); !strings.Contains(got, tt.want) {
			t.Errorf("Badge(%q) = %q, want it to contain %q", tt.status, got, tt.want)
		}
	}
}

func TestBadgeUnknownStatusFallsBack(t *testing.T) {
	// Statuses the backend may add later still render as a badge.
	got := Badge("quarantined")
	if !strings.Contains(got, "QUARANTINED") {
		t.Errorf("Badge(unknown) = %q, want the uppercased value", got)
	}
}

func TestStatusIconUnknownStatusFallsBack(t *testing.T) {
	if StatusIcon("quarantined") == "" {
		t.Error("StatusIcon(unknown) should render a default icon")
	}
}

func TestAgentRowShowsFields(t *testing.T) {
	row := AgentRow("Transaction Analyst", "active", true, 2, "09:30:00", false, 80)
	for _, want := range []string{"Transaction Analyst", "ACTIVE", "09:30:00"} {
		if !strings.Contains(row, want) {
			t.Errorf("AgentRow missing %q in %q", want, row)
		}
	}
}

func TestMessageRowShowsRoute(t *testing.T) {
	row := MessageRow("", "orchestrator", "transaction_analyst", "ANALYZE_REQUEST", "processed", "12s", 100)
	for _, want := range []string{"orchestrator", "ANALYZE_REQUEST", "12s"} {
		if !strings.Contains(row, want) {
			t.Errorf("MessageRow missing %q in %q", want, row)
		}
	}
}

func TestStatsSummarizesFleet(t *testing.T) {
	out := Stats(5, 6)
	if !strings.Contains(out, "5") || !strings.Contains(out, "6") {
		t.Errorf("Stats(5, 6) = %q, want both counts", out)
	}
}

func TestSkeletonIsStable(t *testing.T) {
	if Skeleton(3, 40) != Skeleton(3, 40) {
		t.Error("Skeleton output should not vary between calls")
	}
}
