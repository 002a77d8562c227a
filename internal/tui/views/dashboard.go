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
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/api"
	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/storage"
	"github.com/fraudshield/fraudwatch/internal/tui/components"
	"github.com/fraudshield/fraudwatch/internal/tui/styles"
	"github.com/fraudshield/fraudwatch/pkg/helper"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

// DashboardModel composes the three status cards and the transaction
// stat tiles. Each card owns its own fetch and loading state; the three
// fetches run concurrently and land as independent messages.
type DashboardModel struct {
	client  *api.Client
	store   storage.Store
	refresh time.Duration

	Width  int
	Height int

	Agents        []models.Agent
	A2A           *models.A2AStatus
	System        *models.SystemStatus
	AgentsLoading bool
	A2ALoading    bool
	SystemLoading bool

	SpinnerFrame int
	ShowHelp     bool

	// spinning tracks whether a spinner tick chain is in flight, so a
	// refresh never arms a second one at a faster combined cadence.
	spinning bool
}

func NewDashboardModel(client *api.Client, store storage.Store, refresh time.Duration) DashboardModel {
	if refresh <= 0 {
		refresh = 5 * time.Second
	}
	return DashboardModel{
		client:        client,
		store:         store,
		refresh:       refresh,
		AgentsLoading: true,
		A2ALoading:    true,
		SystemLoading: true,
		spinning:      true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetchAgents, m.fetchA2A, m.fetchSystem, m.tick, m.spinnerTick)
}

func (m DashboardModel) spinnerTick() tea.Msg {
	time.Sleep(80 * time.Millisecond)
	return SpinnerTickMsg{}
}

func (m DashboardModel) tick() tea.Msg {
	time.Sleep(m.refresh)
	return TickMsg(time.Now())
}

func (m DashboardModel) loading() bool {
	return m.AgentsLoading || m.A2ALoading || m.SystemLoading
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "?" {
			m.ShowHelp = !m.ShowHelp
		}
	case SpinnerTickMsg:
		m.SpinnerFrame++
		if m.loading() {
			return m, m.spinnerTick
		}
		m.spinning = false
	case TickMsg:
		m.AgentsLoading = true
		m.A2ALoading = true
		m.SystemLoading = true
		cmds := []tea.Cmd{m.fetchAgents, m.fetchA2A, m.fetchSystem, m.tick}
		if !m.spinning {
			m.spinning = true
			cmds = append(cmds, m.spinnerTick)
		}
		return m, tea.Batch(cmds...)
	case AgentsMsg:
		m.AgentsLoading = false
		if msg.Agents != nil {
			m.Agents = msg.Agents
		} else {
			m.Agents = models.SampleAgents()
		}
	case A2AStatusMsg:
		m.A2ALoading = false
		if msg.Status != nil {
			m.A2A = msg.Status
		} else {
			fallback := models.SampleA2AStatus()
			m.A2A = &fallback
		}
	case SystemStatusMsg:
		m.SystemLoading = false
		if msg.Status != nil {
			m.System = msg.Status
		} else {
			fallback := models.SampleSystemStatus()
			m.System = &fallback
		}
	}
	return m, nil
}

func (m DashboardModel) fetchAgents() tea.Msg {
	agents, err := m.client.FetchAgents(context.Background())
	if err != nil {
		logger.Debug("[DASHBOARD] fetch agents: %v", err)
		return AgentsMsg{}
	}
	return AgentsMsg{Agents: agents}
}

func (m DashboardModel) fetchA2A() tea.Msg {
	status, err := m.client.FetchA2AStatus(context.Background())
	if err != nil {
		logger.Debug("[DASHBOARD] fetch a2a status: %v", err)
		return A2AStatusMsg{}
	}
	if m.store != nil {
		if err := m.store.SaveMessages(status.RecentMessages); err != nil {
			logger.Warn("[DASHBOARD] save messages: %v", err)
		}
	}
	return A2AStatusMsg{Status: status}
}

func (m DashboardModel) fetchSystem() tea.Msg {
	status, err := m.client.FetchSystemStatus(context.Background())
	if err != nil {
		logger.Debug("[DASHBOARD] fetch system status: %v", err)
		return SystemStatusMsg{}
	}
	if m.store != nil {
		if err := m.store.RecordSnapshot(status); err != nil {
			logger.Warn("[DASHBOARD] record snapshot: %v", err)
		}
	}
	return SystemStatusMsg{Status: status}
}

func (m DashboardModel) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	w := m.Width
	now := time.Now()

	b.WriteString("\n")
	b.WriteString(components.Header("Dashboard", w) + "\n\n")

	b.WriteString(components.Section("SYSTEM", w) + "\n\n")
	if m.System == nil {
		b.WriteString(components.SkeletonCard(2, w) + "\n\n")
	} else {
		b.WriteString(components.Wrap(systemSummary(m.System), w) + "\n\n")
	}

	b.WriteString(components.Section("A2A PROTOCOL", w) + "\n\n")
	if m.A2A == nil {
		b.WriteString(components.SkeletonCard(4, w) + "\n\n")
	} else {
		b.WriteString(components.Wrap(a2aSummary(m.A2A, now), w) + "\n\n")
	}

	b.WriteString(components.Section("AGENTS", w) + "\n\n")
	if m.Agents == nil {
		b.WriteString(components.SkeletonCard(3, w) + "\n\n")
	} else {
		b.WriteString(components.Wrap(agentSummary(m.Agents, w), w) + "\n\n")
	}

	b.WriteString(components.Section("TRANSACTIONS", w) + "\n\n")
	b.WriteString(components.StatTileRow(TransactionStats(), w) + "\n")

	content := b.String()
	lines := helper.CountLines(content)
	for i := 0; i < m.Height-lines-3; i++ {
		content += "\n"
	}

	content += "\n" + styles.Line(w) + "\n"
	content += components.Help([][]string{
		{"a", "agents"}, {"p", "protocol"}, {"s", "system"}, {"t", "stats"}, {"h", "history"}, {"tab", "cycle"}, {"?", "help"}, {"q", "quit"},
	})

	if m.loading() {
		content += "  " + components.LoadingInline(m.SpinnerFrame)
	}

	if m.ShowHelp {
		content += "\n\n" + styles.MutedStyle.Render("  Navigation: tab to cycle views, esc to return to dashboard")
		content += "\n" + styles.MutedStyle.Render("  Quick access: a=agents, p=protocol, s=system, t=stats, h=history")
	}

	return content
}

func systemSummary(s *models.SystemStatus) string {
	var b strings.Builder
	b.WriteString("  " + components.StatusIcon(s.Status) + "  " + components.Badge(s.Status))
	b.WriteString("    " + styles.SubtleStyle.Render("uptime") + " " + helper.FormatUptime(int64(s.UptimeSeconds)))
	b.WriteString("    " + styles.SubtleStyle.Render("agents") + fmt.Sprintf(" %d/%d healthy", s.Agents.Healthy, s.Agents.Total))
	b.WriteString("    " + styles.SubtleStyle.Render("model") + " " + styles.MutedStyle.Render(s.Settings.Model))
	return b.String()
}

func a2aSummary(a *models.A2AStatus, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %s\n",
		styles.BrightStyle.Render(helper.FormatCount(a.TotalMessages)),
		styles.MutedStyle.Render("messages"),
		styles.BrightStyle.Render(fmt.Sprintf("%d", a.MessagesLastHour)),
		styles.MutedStyle.Render("last hour"),
		styles.BrightStyle.Render(fmt.Sprintf("%dms", a.AverageLatencyMs)),
		styles.MutedStyle.Render("avg latency")))

	// Display window is the five most recent messages.
	recent := a.RecentMessages
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, msg := range recent {
		b.WriteString("\n" + components.MessageRow(
			components.StatusIcon(string(msg.Status)),
			msg.FromAgent, msg.ToAgent, msg.Type, string(msg.Status),
			helper.FormatMessageAge(msg.Timestamp, now), 0))
	}
	return b.String()
}

func agentSummary(agents []models.Agent, w int) string {
	healthy := 0
	for _, a := range agents {
		if a.Healthy {
			healthy++
		}
	}

	var b strings.Builder
	b.WriteString(components.Stats(healthy, len(agents)))
	b.WriteString("\n")
	for _, a := range agents {
		b.WriteString("\n" + components.AgentRow(a.Name, string(a.Status), a.Healthy,
			len(a.Capabilities), heartbeatLabel(a.LastHeartbeat), false, w))
	}
	return b.String()
}

func heartbeatLabel(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return helper.FormatTimeAgo(*t)
}
