// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/base/draw.go
// Summary: Cell buffer helpers for widget rendering.

package base

import (
	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of s in cells.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Fill returns a width x height buffer of blanks in style.
func Fill(width, height int, style tcell.Style) [][]host.Cell {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	buf := make([][]host.Cell, height)
	for y := range buf {
		buf[y] = make([]host.Cell, width)
		for x := range buf[y] {
			buf[y][x] = host.Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}

// Put writes s into row y starting at column x, clipping at the buffer edge.
// Wide runes take two columns. It returns the column after the last rune.
func Put(buf [][]host.Cell, x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= len(buf) {
		return x
	}
	row := buf[y]
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x < 0 {
			x += rw
			continue
		}
		if x+rw > len(row) {
			break
		}
		row[x] = host.Cell{Ch: r, Style: style}
		for i := 1; i < rw; i++ {
			row[x+i] = host.Cell{Ch: 0, Style: style}
		}
		x += rw
	}
	return x
}

// Label fills the buffer and centers s vertically and horizontally,
// truncating it with an ellipsis when it does not fit.
func Label(width, height int, s string, style tcell.Style) [][]host.Cell {
	buf := Fill(width, height, style)
	if height == 0 || width == 0 {
		return buf
	}
	if TextWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	x := (width - TextWidth(s)) / 2
	Put(buf, x, height/2, s, style)
	return buf
}
