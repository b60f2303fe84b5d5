// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/canvas.go
// Summary: Canvases stacked by z-order on the terminal host.

package termhost

import "github.com/framegrace/texelbar/host"

type canvas struct {
	host    *Host
	bounds  host.Rect
	buf     [][]host.Cell
	visible bool
}

// NewCanvas creates a hidden canvas on top of the stack.
func (h *Host) NewCanvas(r host.Rect) host.Canvas {
	c := &canvas{host: h, bounds: r}
	h.mu.Lock()
	h.canvases = append(h.canvases, c)
	h.mu.Unlock()
	return c
}

// CanvasCount returns the number of live canvases.
func (h *Host) CanvasCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.canvases)
}

func (c *canvas) Bounds() host.Rect { return c.bounds }

// Draw copies buf, clipped to the canvas bounds.
func (c *canvas) Draw(buf [][]host.Cell) {
	rows := len(buf)
	if rows > c.bounds.H {
		rows = c.bounds.H
	}
	out := make([][]host.Cell, rows)
	for y := 0; y < rows; y++ {
		cols := len(buf[y])
		if cols > c.bounds.W {
			cols = c.bounds.W
		}
		out[y] = append([]host.Cell(nil), buf[y][:cols]...)
	}
	c.host.mu.Lock()
	c.buf = out
	visible := c.visible
	c.host.mu.Unlock()
	if visible {
		c.host.markDirty()
	}
}

func (c *canvas) setVisible(v bool) {
	c.host.mu.Lock()
	changed := c.visible != v
	c.visible = v
	c.host.mu.Unlock()
	if changed {
		c.host.markDirty()
	}
}

func (c *canvas) Show() { c.setVisible(true) }
func (c *canvas) Hide() { c.setVisible(false) }

func (c *canvas) Raise() {
	h := c.host
	h.mu.Lock()
	for i, other := range h.canvases {
		if other == c {
			h.canvases = append(h.canvases[:i], h.canvases[i+1:]...)
			h.canvases = append(h.canvases, c)
			break
		}
	}
	h.mu.Unlock()
	h.markDirty()
}

func (c *canvas) Release() {
	h := c.host
	h.mu.Lock()
	for i, other := range h.canvases {
		if other == c {
			h.canvases = append(h.canvases[:i], h.canvases[i+1:]...)
			break
		}
	}
	c.buf = nil
	c.visible = false
	h.mu.Unlock()
	h.markDirty()
}
