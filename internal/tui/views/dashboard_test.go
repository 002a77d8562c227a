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
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDashboardShowsSkeletonsWhileLoading(t *testing.T) {
	m := NewDashboardModel(nil, nil, 0)
	m.Width = 120
	m.Height = 50

	if !m.loading() {
		t.Error("fresh dashboard should be loading")
	}

	view := m.View()
	if !strings.Contains(view, "░") {
		t.Error("loading view should show skeleton placeholders")
	}
}

func TestDashboardFallbackOnNoData(t *testing.T) {
	m := NewDashboardModel(nil, nil, 0)
	m.Width = 120
	m.Height = 50

	// All three fetches resolve without data.
	updated, _ := m.Update(AgentsMsg{})
	m = updated.(DashboardModel)
	updated, _ = m.Update(A2AStatusMsg{})
	m = updated.(DashboardModel)
	updated, _ = m.Update(SystemStatusMsg{})
	m = updated.(DashboardModel)

	if m.loading() {
		t.Error("dashboard should be done loading")
	}

	view := m.View()
	for _, want := range []string{"SYSTEM", "A2A PROTOCOL", "AGENTS", "TRANSACTIONS", "1j 0h 0m", "1.2k"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "░") {
		t.Error("loaded view should not show skeletons")
	}
}

func TestDashboardFallbackIsStable(t *testing.T) {
	m := NewDashboardModel(nil, nil, 0)
	m.Width = 120
	m.Height = 50

	updated, _ := m.Update(SystemStatusMsg{})
	m = updated.(DashboardModel)

	if m.System == nil {
		t.Fatal("fallback should populate system status")
	}
	first := *m.System

	updated, _ = m.Update(SystemStatusMsg{})
	m = updated.(DashboardModel)
	if m.System.UptimeSeconds != first.UptimeSeconds {
		t.Error("fallback system status should not change between renders")
	}
}

func TestRefreshReusesRunningSpinnerChain(t *testing.T) {
	m := NewDashboardModel(nil, nil, 0)
	if !m.spinning {
		t.Fatal("fresh dashboard should have a spinner chain armed")
	}

	// A refresh lands while the initial spinner chain is still
	// re-arming: the batch must not start a second chain.
	updated, cmd := m.Update(TickMsg(time.Now()))
	m = updated.(DashboardModel)
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("refresh should return a batch")
	}
	if len(batch) != 4 {
		t.Errorf("refresh while spinning batched %d commands, want 4 (three fetches and the next tick)", len(batch))
	}

	// Drain the fetches so the chain stops, then refresh again: now the
	// batch restarts the spinner.
	for _, msg := range []tea.Msg{AgentsMsg{}, A2AStatusMsg{}, SystemStatusMsg{}, SpinnerTickMsg{}} {
		updated, _ = m.Update(msg)
		m = updated.(DashboardModel)
	}
	if m.spinning {
		t.Fatal("spinner chain should stop once loading finishes")
	}

	updated, cmd = m.Update(TickMsg(time.Now()))
	m = updated.(DashboardModel)
	batch, ok = cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("refresh should return a batch")
	}
	if len(batch) != 5 {
		t.Errorf("refresh with no spinner chain batched %d commands, want 5", len(batch))
	}
	if !m.spinning {
		t.Error("refresh should re-arm the spinner chain")
	}
}

func TestDashboardHelpToggle(t *testing.T) {
	m := NewDashboardModel(nil, nil, 0)
	m.Width = 120
	m.Height = 50

	updated, _ := m.Update(key("?"))
	m = updated.(DashboardModel)
	if !m.ShowHelp {
		t.Error("? should open the help footer")
	}

	updated, _ = m.Update(key("?"))
	m = updated.(DashboardModel)
	if m.ShowHelp {
		t.Error("? should toggle the help footer off")
	}
}
