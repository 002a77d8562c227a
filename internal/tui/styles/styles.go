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

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Primary     = lipgloss.Color("#7C3AED")
	PrimaryDark = lipgloss.Color("#6D28D9")
	Muted       = lipgloss.Color("#888888")
	Subtle      = lipgloss.Color("#666666")
	Dim         = lipgloss.Color("#444444")
	DimBorder   = lipgloss.Color("#333333")
	Success     = lipgloss.Color("#22C55E")
	Error       = lipgloss.Color("#EF4444")
	Warning     = lipgloss.Color("#FBBF24")
	Info        = lipgloss.Color("#38BDF8")
)

var (
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	BrightStyle  = lipgloss.NewStyle()
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
	DimStyle     = lipgloss.NewStyle().Foreground(Dim)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HeaderStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimBorder).
		Padding(1, 2)

	BoxFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	BoxModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	KeyStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	DescStyle = lipgloss.NewStyle().Foreground(Subtle)

	BadgeActive  = lipgloss.NewStyle().Background(Success).Padding(0, 1)
	BadgeBusy    = lipgloss.NewStyle().Background(Warning).Padding(0, 1)
	BadgeIdle    = lipgloss.NewStyle().Background(Subtle).Padding(0, 1)
	BadgeError   = lipgloss.NewStyle().Background(Error).Padding(0, 1)
	BadgeUnknown = lipgloss.NewStyle().Background(Dim).Padding(0, 1)
	BadgeInfo    = lipgloss.NewStyle().Background(Info).Padding(0, 1)
)

const (
	IconHealthy = "●"
	IconDown    = "○"
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconPointer = "▸"
	IconDash    = "─"
	IconArrow   = "→"
)

var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func Healthy() string { return SuccessStyle.Render(IconHealthy) }
func Down() string    { return MutedStyle.Render(IconDown) }
func Pointer() string { return PrimaryStyle.Render(IconPointer) }

func Line(w int) string {
	if w < 0 {
		w = 0
	}
	return DimStyle.Render(strings.Repeat(IconDash, w))
}

func LogoCompact() string {
	return PrimaryStyle.Bold(true).Render("◆ FRAUDWATCH")
}

func Tagline() string {
	return SubtleStyle.Render("Fraud Detection Monitor") + "  " + MutedStyle.Render("v1.0.0")
}

func Spinner(frame int) string {
	idx := frame % len(SpinnerFrames)
	return PrimaryStyle.Render(SpinnerFrames[idx])
}

func Pad(s string, w int) string {
	l := lipgloss.Width(s)
	if l >= w {
		return s
	}
	return s + strings.Repeat(" ", w-l)
}

func PadL(s string, w int) string {
	l := lipgloss.Width(s)
	if l >= w {
		return s
	}
	return strings.Repeat(" ", w-l) + s
}

func Trunc(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 2 {
		return string(r[:w])
	}
	return string(r[:w-2]) + ".."
}
