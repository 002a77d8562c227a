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
	"github.com/fraudshield/fraudwatch/internal/storage"
	"github.com/fraudshield/fraudwatch/internal/tui/components"
	"github.com/fraudshield/fraudwatch/internal/tui/styles"
	"github.com/fraudshield/fraudwatch/pkg/helper"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

// SystemModel shows the full system status snapshot: overall status,
// uptime, agent counts, training subsystem and configuration metadata.
type SystemModel struct {
	client *api.Client
	store  storage.Store

	Width  int
	Height int

	System *models.SystemStatus
}

func NewSystemModel(client *api.Client, store storage.Store) SystemModel {
	return SystemModel{client: client, store: store}
}

func (m SystemModel) Init() tea.Cmd {
	return m.fetchStatus
}

func (m SystemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.fetchStatus
		}
	case SystemStatusMsg:
		if msg.Status != nil {
			m.System = msg.Status
		} else {
			fallback := models.SampleSystemStatus()
			m.System = &fallback
		}
		return m, nil
	}
	return m, nil
}

func (m SystemModel) fetchStatus() tea.Msg {
	status, err := m.client.FetchSystemStatus(context.Background())
	if err != nil {
		logger.Debug("[SYSTEM] fetch: %v", err)
		return SystemStatusMsg{}
	}
	if m.store != nil {
		if err := m.store.RecordSnapshot(status); err != nil {
			logger.Warn("[SYSTEM] record snapshot: %v", err)
		}
	}
	return SystemStatusMsg{Status: status}
}

func (m SystemModel) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	w := m.Width

	b.WriteString("\n")
	b.WriteString(components.Header("SYSTEM", w) + "\n\n")

	if m.System == nil {
		b.WriteString(components.Section("STATUS", w) + "\n\n")
		b.WriteString(components.SkeletonCard(3, w) + "\n")
	} else {
		s := m.System

		b.WriteString(components.Section("STATUS", w) + "\n\n")
		b.WriteString(components.Card("Overall", []components.CardLine{
			{Label: "Status", Value: components.StatusIcon(s.Status) + "  " + components.Badge(s.Status)},
			{Label: "Uptime", Value: helper.FormatUptime(int64(s.UptimeSeconds))},
		}, false, w) + "\n\n")

		b.WriteString(components.Section("AGENTS", w) + "\n\n")
		b.WriteString(components.Card("Registry", []components.CardLine{
			{Label: "Total", Value: fmt.Sprintf("%d", s.Agents.Total)},
			{Label: "Active", Value: styles.SuccessStyle.Render(fmt.Sprintf("%d", s.Agents.Active))},
			{Label: "Healthy", Value: fmt.Sprintf("%d", s.Agents.Healthy)},
		}, false, w) + "\n\n")

		b.WriteString(components.Section("TRAINING", w) + "\n\n")
		b.WriteString(components.Card("RL Training", []components.CardLine{
			{Label: "Status", Value: components.Badge(s.Training.Status)},
			{Label: "Steps", Value: fmt.Sprintf("%d", s.Training.TotalSteps)},
			{Label: "Buffer", Value: fmt.Sprintf("%d", s.Training.BufferSize)},
			{Label: "Avg loss", Value: fmt.Sprintf("%.4f", s.Training.RecentAvgLoss)},
		}, false, w) + "\n\n")

		b.WriteString(components.Section("CONFIGURATION", w) + "\n\n")
		b.WriteString(components.Card("Settings", []components.CardLine{
			{Label: "Model", Value: styles.PrimaryStyle.Render(s.Settings.Model)},
			{Label: "Workflows", Value: styles.MutedStyle.Render(strings.Join(s.Settings.Workflows, ", "))},
		}, false, w) + "\n")
	}

	content := b.String()
	lines := helper.CountLines(content)
	for i := 0; i < m.Height-lines-3; i++ {
		content += "\n"
	}

	content += "\n" + styles.Line(w) + "\n"
	content += components.Help([][]string{
		{"r", "refresh"}, {"tab", "cycle"}, {"esc", "back"},
	})

	return content
}
