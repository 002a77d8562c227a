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

const protocolLogWindow = 20

// ProtocolModel is the A2A protocol view: snapshot summary plus the
// message log. Messages pushed over the live stream are merged in ahead
// of the fetched snapshot.
type ProtocolModel struct {
	client *api.Client
	store  storage.Store

	Width  int
	Height int

	A2A    *models.A2AStatus
	Live   []models.A2AMessage
	Loaded bool
}

func NewProtocolModel(client *api.Client, store storage.Store) ProtocolModel {
	return ProtocolModel{client: client, store: store}
}

func (m ProtocolModel) Init() tea.Cmd {
	return m.fetchStatus
}

func (m ProtocolModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.fetchStatus
		}
	case A2AStatusMsg:
		m.Loaded = true
		if msg.Status != nil {
			m.A2A = msg.Status
		} else {
			fallback := models.SampleA2AStatus()
			m.A2A = &fallback
		}
		return m, nil
	case StreamMsg:
		m.Live = append([]models.A2AMessage{models.A2AMessage(msg)}, m.Live...)
		if len(m.Live) > protocolLogWindow {
			m.Live = m.Live[:protocolLogWindow]
		}
		return m, nil
	}
	return m, nil
}

func (m ProtocolModel) fetchStatus() tea.Msg {
	status, err := m.client.FetchA2AStatus(context.Background())
	if err != nil {
		logger.Debug("[PROTOCOL] fetch: %v", err)
		return A2AStatusMsg{}
	}
	if m.store != nil {
		if err := m.store.SaveMessages(status.RecentMessages); err != nil {
			logger.Warn("[PROTOCOL] save messages: %v", err)
		}
	}
	return A2AStatusMsg{Status: status}
}

// log merges live-streamed messages with the fetched snapshot, newest
// first, deduplicated by message id.
func (m ProtocolModel) log() []models.A2AMessage {
	seen := make(map[string]bool)
	var out []models.A2AMessage
	for _, msg := range m.Live {
		if !seen[msg.ID] {
			seen[msg.ID] = true
			out = append(out, msg)
		}
	}
	if m.A2A != nil {
		for _, msg := range m.A2A.RecentMessages {
			if !seen[msg.ID] {
				seen[msg.ID] = true
				out = append(out, msg)
			}
		}
	}
	if len(out) > protocolLogWindow {
		out = out[:protocolLogWindow]
	}
	return out
}

func (m ProtocolModel) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	w := m.Width
	now := time.Now()

	b.WriteString("\n")
	b.WriteString(components.Header("A2A PROTOCOL", w) + "\n\n")

	b.WriteString(components.Section("PROTOCOL", w) + "\n\n")
	if m.A2A == nil {
		b.WriteString(components.SkeletonCard(2, w) + "\n\n")
	} else {
		var s strings.Builder
		s.WriteString(fmt.Sprintf("  %s  %s    %s %s\n\n",
			components.StatusIcon(m.A2A.Status),
			components.Badge(m.A2A.Status),
			styles.SubtleStyle.Render("version"),
			styles.MutedStyle.Render(m.A2A.ProtocolVersion)))
		s.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %s",
			styles.BrightStyle.Render(helper.FormatCount(m.A2A.TotalMessages)),
			styles.MutedStyle.Render("total messages"),
			styles.BrightStyle.Render(fmt.Sprintf("%d", m.A2A.MessagesLastHour)),
			styles.MutedStyle.Render("last hour"),
			styles.BrightStyle.Render(fmt.Sprintf("%dms", m.A2A.AverageLatencyMs)),
			styles.MutedStyle.Render("avg latency")))
		b.WriteString(components.Wrap(s.String(), w) + "\n\n")
	}

	b.WriteString(components.Section("MESSAGE LOG", w) + "\n\n")
	entries := m.log()
	if !m.Loaded && len(entries) == 0 {
		b.WriteString(components.SkeletonCard(5, w) + "\n")
	} else if len(entries) == 0 {
		b.WriteString(components.Empty("No messages observed yet", "waiting for protocol traffic", w) + "\n")
	} else {
		var logContent strings.Builder
		logContent.WriteString(components.MessageListHeader(w) + "\n")
		logContent.WriteString("  " + styles.Line(w-8) + "\n")
		for _, msg := range entries {
			logContent.WriteString(components.MessageRow(
				components.StatusIcon(string(msg.Status)),
				msg.FromAgent, msg.ToAgent, msg.Type, string(msg.Status),
				helper.FormatMessageAge(msg.Timestamp, now), w) + "\n")
		}
		b.WriteString(components.Wrap(logContent.String(), w) + "\n")
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
