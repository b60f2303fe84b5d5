// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/linegraph/dotgraph.go
// Summary: Dot graph variant plotting one braille dot per sample.

package linegraph

import (
	"time"

	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

// dotLevels are the braille rows of one cell, bottom to top.
var dotLevels = []rune("⣀⠤⠒⠉")

// NewDots returns a builder that plots samples as dots instead of bars.
func NewDots(name string, src Source, samples int, interval time.Duration) *Builder {
	b := New(name, src, samples, interval)
	b.dots = true
	return b
}

// plotDots marks a single dot per column; rows below it stay empty.
func (g *graph) plotDots(buf [][]host.Cell, values []float64, style tcell.Style) {
	height := len(buf)
	width := len(buf[0])
	steps := height * len(dotLevels)
	for i, v := range values {
		x := width - len(values) + i
		if x < 0 {
			continue
		}
		n := g.level(v, values, steps)
		y := height - 1 - n/len(dotLevels)
		buf[y][x] = host.Cell{Ch: dotLevels[n%len(dotLevels)], Style: style}
	}
}
