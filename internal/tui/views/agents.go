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
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/api"
	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/tui/components"
	"github.com/fraudshield/fraudwatch/internal/tui/styles"
	"github.com/fraudshield/fraudwatch/pkg/helper"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

// AgentsModel is the agent list plus the detail modal. Selection is a
// single agent id owned by this view: while it is set the modal is
// mounted, clearing it unmounts the modal.
type AgentsModel struct {
	client *api.Client

	Width  int
	Height int

	Agents     []models.Agent
	Cursor     int
	SelectedID string
	Loaded     bool
}

func NewAgentsModel(client *api.Client) AgentsModel {
	return AgentsModel{client: client}
}

func (m AgentsModel) Init() tea.Cmd {
	return m.fetchAgents
}

func (m AgentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.SelectedID != "" {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	case AgentsMsg:
		m.Loaded = true
		if msg.Agents != nil {
			m.Agents = msg.Agents
		} else {
			m.Agents = models.SampleAgents()
		}
		if m.Cursor >= len(m.Agents) {
			m.Cursor = 0
		}
		return m, nil
	}
	return m, nil
}

func (m AgentsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Agents)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Agents) > 0 {
			m.SelectedID = m.Agents[m.Cursor].ID
		}
	case "r":
		return m, m.fetchAgents
	}
	return m, nil
}

func (m AgentsModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.SelectedID = ""
	}
	return m, nil
}

// ModalOpen reports whether the detail modal is mounted. Esc closes the
// modal first instead of leaving the view.
func (m AgentsModel) ModalOpen() bool {
	return m.SelectedID != ""
}

func (m AgentsModel) fetchAgents() tea.Msg {
	agents, err := m.client.FetchAgents(context.Background())
	if err != nil {
		logger.Debug("[AGENTS] fetch: %v", err)
		return AgentsMsg{}
	}
	return AgentsMsg{Agents: agents}
}

func (m AgentsModel) selectedAgent() *models.Agent {
	for i := range m.Agents {
		if m.Agents[i].ID == m.SelectedID {
			return &m.Agents[i]
		}
	}
	return nil
}

func (m AgentsModel) View() string {
	if m.Width == 0 {
		return ""
	}

	if agent := m.selectedAgent(); agent != nil {
		return components.AgentDetailModal(components.AgentDetail{
			ID:             agent.ID,
			Name:           agent.Name,
			Status:         string(agent.Status),
			Healthy:        agent.Healthy,
			Capabilities:   agent.Capabilities,
			SupportedTasks: agent.SupportedTasks,
			LastHeartbeat:  heartbeatLabel(agent.LastHeartbeat),
		}, m.Width, m.Height)
	}

	var b strings.Builder
	w := m.Width

	b.WriteString("\n")
	b.WriteString(components.Header("AGENTS", w) + "\n\n")

	healthy := 0
	for _, a := range m.Agents {
		if a.Healthy {
			healthy++
		}
	}

	b.WriteString(components.Section(fmt.Sprintf("FLEET  %d/%d HEALTHY", healthy, len(m.Agents)), w) + "\n\n")

	if !m.Loaded {
		b.WriteString(components.SkeletonCard(4, w) + "\n")
	} else if len(m.Agents) == 0 {
		b.WriteString(components.Empty("No agents registered", "the backend registry is empty", w) + "\n")
	} else {
		var listContent strings.Builder
		listContent.WriteString(components.AgentListHeader(w) + "\n")
		listContent.WriteString("  " + styles.Line(w-8) + "\n")
		// Rows keep the order the backend returned.
		for i, a := range m.Agents {
			listContent.WriteString(components.AgentRow(a.Name, string(a.Status), a.Healthy,
				len(a.Capabilities), heartbeatLabel(a.LastHeartbeat), i == m.Cursor, w) + "\n")
		}
		b.WriteString(components.Wrap(listContent.String(), w) + "\n")
	}

	content := b.String()
	lines := helper.CountLines(content)
	for i := 0; i < m.Height-lines-3; i++ {
		content += "\n"
	}

	content += "\n" + styles.Line(w) + "\n"
	content += components.Help([][]string{
		{"↑↓", "navigate"}, {"enter", "details"}, {"r", "refresh"}, {"esc", "back"},
	})

	return content
}
