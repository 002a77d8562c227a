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

package helper

import (
	"testing"
	"time"
)

func TestFormatMessageAge(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"zero elapsed", now, "0s"},
		{"seconds", now.Add(-12 * time.Second), "12s"},
		{"just under a minute", now.Add(-59 * time.Second), "59s"},
		{"exactly a minute", now.Add(-time.Minute), "1m"},
		{"minutes", now.Add(-45 * time.Minute), "45m"},
		{"just under an hour", now.Add(-59*time.Minute - 59*time.Second), "59m"},
		{"an hour falls back to clock time", now.Add(-time.Hour), "09:00:00"},
		{"old message shows clock time", time.Date(2026, 8, 1, 7, 30, 15, 0, time.UTC), "07:30:15"},
		{"future timestamp clamps to zero", now.Add(30 * time.Second), "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMessageAge(tt.ts, now); got != tt.want {
				t.Errorf("FormatMessageAge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "0m"},
		{"minutes only", 125, "2m"},
		{"hours and minutes", 3725, "1h 2m"},
		{"one day", 86400, "1j 0h 0m"},
		{"day with remainder", 90061, "1j 1h 1m"},
		{"multiple days", 3*86400 + 5*3600 + 42*60, "3j 5h 42m"},
		{"negative clamps to zero", -10, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUptime(tt.seconds); got != tt.want {
				t.Errorf("FormatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(847); got != "847" {
		t.Errorf("FormatCount(847) = %q, want %q", got, "847")
	}
	if got := FormatCount(1247); got != "1.2k" {
		t.Errorf("FormatCount(1247) = %q, want %q", got, "1.2k")
	}
}
