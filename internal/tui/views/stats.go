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

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/tui/components"
	"github.com/fraudshield/fraudwatch/internal/tui/styles"
	"github.com/fraudshield/fraudwatch/pkg/helper"
)

// TransactionStats is the fixed tile list for the transaction card. No
// fetch backs it; the order is the display order.
func TransactionStats() []components.StatTileData {
	return []components.StatTileData{
		{
			Label:    "Transactions analysées",
			Value:    "12 847",
			Delta:    "+12%",
			Polarity: 1,
			Icon:     styles.InfoStyle.Render("◆"),
		},
		{
			Label:    "Fraudes détectées",
			Value:    "342",
			Delta:    "+2.4%",
			Polarity: -1,
			Icon:     styles.ErrorStyle.Render("◆"),
		},
		{
			Label:    "Montant bloqué",
			Value:    "€1.2M",
			Delta:    "+8%",
			Polarity: 1,
			Icon:     styles.SuccessStyle.Render("◆"),
		},
		{
			Label:    "Faux positifs",
			Value:    "1.8%",
			Delta:    "-0.3%",
			Polarity: 1,
			Icon:     styles.WarningStyle.Render("◆"),
		},
	}
}

// StatsModel renders the static transaction tiles on their own screen.
// Stateless beyond window size.
type StatsModel struct {
	Width  int
	Height int
}

func NewStatsModel() StatsModel {
	return StatsModel{}
}

func (m StatsModel) Init() tea.Cmd {
	return nil
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m StatsModel) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	w := m.Width

	b.WriteString("\n")
	b.WriteString(components.Header("TRANSACTIONS", w) + "\n\n")

	tiles := TransactionStats()

	b.WriteString(components.Section("LAST 24 HOURS", w) + "\n\n")
	b.WriteString(components.StatTileRow(tiles[:2], w) + "\n")
	b.WriteString(components.StatTileRow(tiles[2:], w) + "\n")

	content := b.String()
	lines := helper.CountLines(content)
	for i := 0; i < m.Height-lines-3; i++ {
		content += "\n"
	}

	content += "\n" + styles.Line(w) + "\n"
	content += components.Help([][]string{
		{"tab", "cycle"}, {"esc", "back"},
	})

	return content
}
