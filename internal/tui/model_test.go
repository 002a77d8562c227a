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

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/config"
	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/tui/views"
)

func newTestModel() *Model {
	m := NewModel(nil, nil, config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(*Model)
	return model
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizePropagates(t *testing.T) {
	m := newTestModel()

	if !m.Ready {
		t.Error("model should be ready after the first window size")
	}
	if m.Dashboard.Width != 120 || m.Agents.Width != 120 || m.History.Width != 120 {
		t.Error("window size should reach every view")
	}
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestModel()

	order := []ViewState{ViewAgents, ViewProtocol, ViewSystem, ViewStats, ViewHistory, ViewDashboard}
	for _, want := range order {
		updated, _ := m.Update(keyMsg("tab"))
		m = updated.(*Model)
		if m.ActiveView != want {
			t.Fatalf("ActiveView = %d, want %d", m.ActiveView, want)
		}
	}
}

func TestQuickKeysFromDashboard(t *testing.T) {
	tests := []struct {
		key  string
		want ViewState
	}{
		{"a", ViewAgents},
		{"p", ViewProtocol},
		{"s", ViewSystem},
		{"t", ViewStats},
		{"h", ViewHistory},
	}

	for _, tt := range tests {
		m := newTestModel()
		updated, _ := m.Update(keyMsg(tt.key))
		m = updated.(*Model)
		if m.ActiveView != tt.want {
			t.Errorf("key %q: ActiveView = %d, want %d", tt.key, m.ActiveView, tt.want)
		}
	}
}

func TestEscReturnsToDashboard(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(keyMsg("p"))
	m = updated.(*Model)

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(*Model)
	if m.ActiveView != ViewDashboard {
		t.Errorf("ActiveView = %d, want dashboard", m.ActiveView)
	}
}

func TestEscClosesModalBeforeLeavingAgents(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(*Model)

	updated, _ = m.Update(views.AgentsMsg{Agents: models.SampleAgents()})
	m = updated.(*Model)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(*Model)
	if !m.Agents.ModalOpen() {
		t.Fatal("modal should be open")
	}

	// First esc closes the modal, the view stays put.
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(*Model)
	if m.ActiveView != ViewAgents {
		t.Fatal("esc with an open modal should stay on the agents view")
	}
	if m.Agents.ModalOpen() {
		t.Fatal("esc should have closed the modal")
	}

	// Second esc leaves the view.
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(*Model)
	if m.ActiveView != ViewDashboard {
		t.Error("second esc should return to the dashboard")
	}
}

func TestQuitSparedWhileModalOpen(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(*Model)
	updated, _ = m.Update(views.AgentsMsg{Agents: models.SampleAgents()})
	m = updated.(*Model)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(*Model)

	// q with the modal open closes the modal instead of quitting.
	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(*Model)
	if m.Agents.ModalOpen() {
		t.Error("q should close the modal")
	}
	if cmd != nil {
		t.Error("q with an open modal should not quit")
	}
}

func TestStreamMessagesReachProtocolView(t *testing.T) {
	m := newTestModel()

	msg := views.StreamMsg(models.A2AMessage{ID: "live-1", FromAgent: "a", ToAgent: "b"})
	updated, _ := m.Update(msg)
	m = updated.(*Model)

	if len(m.Protocol.Live) != 1 {
		t.Fatalf("Live has %d messages, want 1", len(m.Protocol.Live))
	}
	if m.Protocol.Live[0].ID != "live-1" {
		t.Errorf("Live[0].ID = %q", m.Protocol.Live[0].ID)
	}
}

func TestViewRendersActiveView(t *testing.T) {
	m := newTestModel()
	if m.View() == "" {
		t.Error("ready model should render")
	}

	blank := NewModel(nil, nil, config.Default())
	if blank.View() != "" {
		t.Error("model should render nothing before the first window size")
	}
}
