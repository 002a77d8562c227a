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
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/storage"
	"github.com/fraudshield/fraudwatch/internal/tui/components"
	"github.com/fraudshield/fraudwatch/internal/tui/styles"
	"github.com/fraudshield/fraudwatch/pkg/helper"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

const historyWindow = 15

// HistoryModel shows what the dashboard has recorded locally: past
// system snapshots and the archived message log.
type HistoryModel struct {
	store storage.Store

	Width  int
	Height int

	Snapshots []storage.SnapshotRecord
	Messages  []storageMessage
	Stats     *storage.Stats
	Loaded    bool
}

type storageMessage struct {
	From, To, Type, Status string
	Timestamp              time.Time
}

func NewHistoryModel(store storage.Store) HistoryModel {
	return HistoryModel{store: store}
}

func (m HistoryModel) Init() tea.Cmd {
	return m.fetchHistory
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.fetchHistory
		}
	case HistoryMsg:
		m.Loaded = true
		m.Snapshots = msg.Snapshots
		m.Stats = msg.Stats
		m.Messages = m.Messages[:0]
		for _, a := range msg.Messages {
			m.Messages = append(m.Messages, storageMessage{
				From: a.FromAgent, To: a.ToAgent, Type: a.Type,
				Status: string(a.Status), Timestamp: a.Timestamp,
			})
		}
		return m, nil
	}
	return m, nil
}

func (m HistoryModel) fetchHistory() tea.Msg {
	if m.store == nil {
		return HistoryMsg{}
	}

	snapshots, err := m.store.GetRecentSnapshots(historyWindow)
	if err != nil {
		logger.Warn("[HISTORY] snapshots: %v", err)
	}
	messages, err := m.store.GetRecentMessages(historyWindow)
	if err != nil {
		logger.Warn("[HISTORY] messages: %v", err)
	}
	stats, err := m.store.GetStats()
	if err != nil {
		logger.Warn("[HISTORY] stats: %v", err)
	}

	return HistoryMsg{Snapshots: snapshots, Messages: messages, Stats: stats}
}

func (m HistoryModel) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	w := m.Width
	now := time.Now()

	b.WriteString("\n")
	b.WriteString(components.Header("HISTORY", w) + "\n\n")

	if m.Stats != nil {
		b.WriteString(components.Section("OBSERVED", w) + "\n\n")
		var s strings.Builder
		s.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %s",
			styles.BrightStyle.Render(fmt.Sprintf("%d", m.Stats.SnapshotsTotal)),
			styles.MutedStyle.Render("snapshots"),
			styles.BrightStyle.Render(fmt.Sprintf("%d", m.Stats.MessagesTotal)),
			styles.MutedStyle.Render("messages"),
			styles.ErrorStyle.Render(fmt.Sprintf("%d", m.Stats.MessagesFailed)),
			styles.MutedStyle.Render("failed")))
		if !m.Stats.FirstObservedAt.IsZero() {
			s.WriteString("\n\n  " + styles.SubtleStyle.Render("since ") +
				styles.MutedStyle.Render(m.Stats.FirstObservedAt.Format("2006-01-02 15:04")))
		}
		b.WriteString(components.Wrap(s.String(), w) + "\n\n")
	}

	b.WriteString(components.Section("SNAPSHOTS", w) + "\n\n")
	if !m.Loaded {
		b.WriteString(components.SkeletonCard(4, w) + "\n\n")
	} else if len(m.Snapshots) == 0 {
		b.WriteString(components.Empty("Nothing recorded yet", "snapshots are written on every fetch", w) + "\n\n")
	} else {
		var snapContent strings.Builder
		snapContent.WriteString(fmt.Sprintf("    %s  %s  %s  %s\n",
			styles.MutedStyle.Render(styles.Pad("RECORDED", 18)),
			styles.MutedStyle.Render(styles.Pad("STATUS", 11)),
			styles.MutedStyle.Render(styles.Pad("UPTIME", 12)),
			styles.MutedStyle.Render("AGENTS")))
		snapContent.WriteString("  " + styles.Line(w-8) + "\n")
		for _, s := range m.Snapshots {
			snapContent.WriteString(fmt.Sprintf("    %s  %s  %s  %s\n",
				styles.MutedStyle.Render(styles.Pad(s.RecordedAt.Format("01-02 15:04:05"), 18)),
				styles.Pad(components.Badge(s.Status), 11),
				styles.Pad(helper.FormatUptime(int64(s.UptimeSeconds)), 12),
				fmt.Sprintf("%d/%d healthy", s.AgentsHealthy, s.AgentsTotal)))
		}
		b.WriteString(components.Wrap(snapContent.String(), w) + "\n\n")
	}

	b.WriteString(components.Section("MESSAGE ARCHIVE", w) + "\n\n")
	if len(m.Messages) == 0 {
		b.WriteString(components.Empty("No messages recorded", "", w) + "\n")
	} else {
		var msgContent strings.Builder
		for _, msg := range m.Messages {
			msgContent.WriteString(components.MessageRow(
				components.StatusIcon(msg.Status),
				msg.From, msg.To, msg.Type, msg.Status,
				helper.FormatMessageAge(msg.Timestamp, now), w) + "\n")
		}
		b.WriteString(components.Wrap(msgContent.String(), w) + "\n")
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
