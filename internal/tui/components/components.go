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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fraudshield/fraudwatch/internal/tui/styles"
)

func Wrap(content string, w int) string {
	return styles.Box.Width(w - 4).Render(content)
}

func WrapFocused(content string, w int) string {
	return styles.BoxFocused.Width(w - 4).Render(content)
}

func Header(title string, w int) string {
	left := styles.LogoCompact()
	right := styles.Tagline()
	if title != "" {
		right = styles.HeaderStyle.Render(title)
	}
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	gap := w - lw - rw - 4
	if gap < 1 {
		gap = 1
	}
	return "  " + left + strings.Repeat(" ", gap) + right + "  "
}

func Section(title string, w int) string {
	t := styles.MutedStyle.Bold(true).Render(strings.ToUpper(title))
	tw := lipgloss.Width(t)
	lw := w - tw - 6
	if lw < 0 {
		lw = 0
	}
	return "  " + t + " " + styles.Line(lw)
}

func Help(items [][]string) string {
	var p []string
	for _, i := range items {
		if len(i) >= 2 {
			p = append(p, styles.KeyStyle.Render(i[0])+" "+styles.DescStyle.Render(i[1]))
		}
	}
	return "  " + strings.Join(p, "   ")
}

// Badge maps an enumerated status value to its badge. Values outside the
// table get the unknown badge rather than failing, so unseen backend
// statuses still render.
func Badge(s string) string {
	switch s {
	case "active":
		return styles.BadgeActive.Render("ACTIVE")
	case "busy":
		return styles.BadgeBusy.Render("BUSY")
	case "idle":
		return styles.BadgeIdle.Render("IDLE")
	case "error":
		return styles.BadgeError.Render("ERROR")
	case "pending":
		return styles.BadgeIdle.Render("PENDING")
	case "delivered":
		return styles.BadgeInfo.Render("DELIVERED")
	case "processed":
		return styles.BadgeActive.Render("PROCESSED")
	case "failed":
		return styles.BadgeError.Render("FAILED")
	case "running", "healthy":
		return styles.BadgeActive.Render(strings.ToUpper(s))
	case "degraded":
		return styles.BadgeBusy.Render("DEGRADED")
	default:
		return styles.BadgeUnknown.Render(strings.ToUpper(s))
	}
}

// StatusIcon is the icon half of the status classification table.
func StatusIcon(s string) string {
	switch s {
	case "active", "processed", "running", "healthy":
		return styles.SuccessStyle.Render(styles.IconSuccess)
	case "busy", "pending", "degraded":
		return styles.WarningStyle.Render(styles.IconWarning)
	case "error", "failed":
		return styles.ErrorStyle.Render(styles.IconError)
	case "delivered":
		return styles.InfoStyle.Render(styles.IconHealthy)
	default:
		return styles.MutedStyle.Render(styles.IconDown)
	}
}

func AgentRow(name, status string, healthy bool, caps int, lastSeen string, selected bool, w int) string {
	ptr := "   "
	if selected {
		ptr = " " + styles.Pointer() + " "
	}

	dot := styles.Down()
	if healthy {
		dot = styles.Healthy()
	}

	nameStyle := styles.BrightStyle
	if selected {
		nameStyle = styles.PrimaryStyle
	}

	return fmt.Sprintf("%s%s  %s  %s  %s  %s",
		ptr,
		dot,
		nameStyle.Render(styles.Pad(styles.Trunc(name, 24), 24)),
		styles.Pad(Badge(status), 11),
		styles.MutedStyle.Render(styles.PadL(fmt.Sprintf("%d caps", caps), 8)),
		styles.MutedStyle.Render(lastSeen))
}

func AgentListHeader(w int) string {
	return fmt.Sprintf("       %s  %s  %s  %s",
		styles.MutedStyle.Render(styles.Pad("NAME", 24)),
		styles.MutedStyle.Render(styles.Pad("STATUS", 11)),
		styles.MutedStyle.Render(styles.PadL("CAPS", 8)),
		styles.MutedStyle.Render("LAST HEARTBEAT"))
}

func MessageRow(icon, from, to, typ, status, age string, w int) string {
	return fmt.Sprintf("  %s  %s %s %s  %s  %s  %s",
		icon,
		styles.Pad(styles.Trunc(from, 18), 18),
		styles.SubtleStyle.Render(styles.IconArrow),
		styles.Pad(styles.Trunc(to, 18), 18),
		styles.MutedStyle.Render(styles.Pad(styles.Trunc(typ, 16), 16)),
		styles.Pad(Badge(status), 11),
		styles.MutedStyle.Render(age))
}

func MessageListHeader(w int) string {
	return fmt.Sprintf("     %s   %s  %s  %s  %s",
		styles.MutedStyle.Render(styles.Pad("FROM", 18)),
		styles.MutedStyle.Render(styles.Pad("TO", 18)),
		styles.MutedStyle.Render(styles.Pad("TYPE", 16)),
		styles.MutedStyle.Render(styles.Pad("STATUS", 11)),
		styles.MutedStyle.Render("AGE"))
}

// StatTileData is one metric tile: a label, a formatted value, and an
// optional delta whose polarity picks the color.
type StatTileData struct {
	Label    string
	Value    string
	Delta    string
	Polarity int
	Icon     string
}

func StatTile(d StatTileData, w int) string {
	var b strings.Builder
	title := styles.SubtleStyle.Render(d.Label)
	if d.Icon != "" {
		title = d.Icon + " " + title
	}
	b.WriteString(title + "\n\n")
	b.WriteString(styles.TitleStyle.Render(d.Value))
	if d.Delta != "" {
		deltaStyle := styles.MutedStyle
		if d.Polarity > 0 {
			deltaStyle = styles.SuccessStyle
		} else if d.Polarity < 0 {
			deltaStyle = styles.ErrorStyle
		}
		b.WriteString("  " + deltaStyle.Render(d.Delta))
	}
	return styles.Box.Width(w).Render(b.String())
}

// StatTileRow lays tiles out side by side, splitting the width evenly.
func StatTileRow(tiles []StatTileData, w int) string {
	if len(tiles) == 0 {
		return ""
	}
	tw := (w-4)/len(tiles) - 2
	if tw < 16 {
		tw = 16
	}
	rendered := make([]string, len(tiles))
	for i, t := range tiles {
		rendered[i] = StatTile(t, tw)
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func Stats(healthy, total int) string {
	return fmt.Sprintf("  %s %s    %s %s",
		styles.SuccessStyle.Render(fmt.Sprintf("%d", healthy)),
		styles.MutedStyle.Render("healthy"),
		styles.BrightStyle.Render(fmt.Sprintf("%d", total)),
		styles.MutedStyle.Render("total"))
}

type CardLine struct {
	Label string
	Value string
}

func Card(title string, lines []CardLine, focused bool, w int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(title) + "\n")
	for _, l := range lines {
		b.WriteString("\n" + styles.SubtleStyle.Render(styles.Pad(l.Label, 12)) + " " + l.Value)
	}
	if focused {
		return WrapFocused(b.String(), w)
	}
	return Wrap(b.String(), w)
}

func Empty(title, sub string, w int) string {
	c := styles.MutedStyle.Render(title)
	if sub != "" {
		c += "\n" + styles.SubtleStyle.Render(sub)
	}
	return Wrap(c, w)
}
