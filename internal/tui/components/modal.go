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

	"github.com/charmbracelet/lipgloss"

	"github.com/fraudshield/fraudwatch/internal/tui/styles"
)

// AgentDetail is the content of the detail modal opened from the agent
// list. It exists while exactly one agent id is selected.
type AgentDetail struct {
	ID             string
	Name           string
	Status         string
	Healthy        bool
	Capabilities   []string
	SupportedTasks []string
	LastHeartbeat  string
}

// AgentDetailModal renders the detail card centered on the screen.
func AgentDetailModal(d AgentDetail, screenWidth, screenHeight int) string {
	modalWidth := 56
	if modalWidth > screenWidth-4 {
		modalWidth = screenWidth - 4
	}

	var content strings.Builder

	health := styles.Down() + " " + styles.MutedStyle.Render("unhealthy")
	if d.Healthy {
		health = styles.Healthy() + " " + styles.SuccessStyle.Render("healthy")
	}

	content.WriteString(styles.TitleStyle.Render(d.Name) + "  " + Badge(d.Status) + "\n\n")
	content.WriteString(styles.SubtleStyle.Render("ID         ") + styles.MutedStyle.Render(d.ID) + "\n")
	content.WriteString(styles.SubtleStyle.Render("Health     ") + health + "\n")
	content.WriteString(styles.SubtleStyle.Render("Heartbeat  ") + styles.MutedStyle.Render(d.LastHeartbeat) + "\n")

	if len(d.Capabilities) > 0 {
		content.WriteString("\n" + styles.SubtleStyle.Render("Capabilities") + "\n")
		for _, c := range d.Capabilities {
			content.WriteString("  " + styles.Pointer() + " " + c + "\n")
		}
	}

	if len(d.SupportedTasks) > 0 {
		content.WriteString("\n" + styles.SubtleStyle.Render("Supported tasks") + "\n")
		for _, t := range d.SupportedTasks {
			content.WriteString("  " + styles.Pointer() + " " + t + "\n")
		}
	}

	content.WriteString("\n" + styles.MutedStyle.Render("esc close"))

	modalBox := styles.BoxModal.Width(modalWidth).Render(content.String())

	modalLines := strings.Split(modalBox, "\n")
	modalHeight := len(modalLines)

	topPad := (screenHeight - modalHeight) / 2
	if topPad < 0 {
		topPad = 0
	}

	leftPad := (screenWidth - lipgloss.Width(modalLines[0])) / 2
	if leftPad < 0 {
		leftPad = 0
	}

	var b strings.Builder

	for i := 0; i < topPad; i++ {
		b.WriteString("\n")
	}

	for _, line := range modalLines {
		b.WriteString(strings.Repeat(" ", leftPad) + line + "\n")
	}

	return b.String()
}
