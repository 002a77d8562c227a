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

	"github.com/fraudshield/fraudwatch/internal/tui/styles"
)

func LoadingInline(frame int) string {
	return styles.Spinner(frame)
}

// Skeleton is the fixed-shape placeholder a card shows while its fetch is
// in flight. The shape never depends on data, only on the width and the
// requested row count.
func Skeleton(rows, w int) string {
	bw := w - 12
	if bw < 10 {
		bw = 10
	}
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + styles.DimStyle.Render(strings.Repeat("░", bw)))
	}
	return b.String()
}

func SkeletonCard(rows, w int) string {
	return Wrap(Skeleton(rows, w), w)
}
