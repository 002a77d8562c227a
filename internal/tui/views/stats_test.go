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
	"testing"
)

func TestTransactionStatsOrder(t *testing.T) {
	tiles := TransactionStats()
	if len(tiles) != 4 {
		t.Fatalf("got %d tiles, want 4", len(tiles))
	}

	wantLabels := []string{
		"Transactions analysées",
		"Fraudes détectées",
		"Montant bloqué",
		"Faux positifs",
	}
	for i, want := range wantLabels {
		if tiles[i].Label != want {
			t.Errorf("tile %d = %q, want %q", i, tiles[i].Label, want)
		}
	}

	// Rising fraud count reads as bad, the falling false positive rate
	// reads as good.
	if tiles[1].Polarity >= 0 {
		t.Error("fraud tile should have negative polarity")
	}
	if tiles[3].Polarity <= 0 {
		t.Error("false positive tile should have positive polarity")
	}
}

func TestStatsView(t *testing.T) {
	m := NewStatsModel()
	m.Width = 120
	m.Height = 40

	view := m.View()
	for _, want := range []string{"TRANSACTIONS", "12 847", "€1.2M", "Faux positifs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
