// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package panel

import (
	"fmt"

	"github.com/framegrace/texelbar/host"
)

type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

type fakeCanvas struct {
	rec      *recorder
	bounds   host.Rect
	visible  bool
	released bool
	drawn    [][]host.Cell
}

func (c *fakeCanvas) Bounds() host.Rect    { return c.bounds }
func (c *fakeCanvas) Draw(b [][]host.Cell) { c.drawn = b }
func (c *fakeCanvas) Show()                { c.visible = true; c.rec.add("chrome show") }
func (c *fakeCanvas) Hide()                { c.visible = false; c.rec.add("chrome hide") }
func (c *fakeCanvas) Raise()               {}
func (c *fakeCanvas) Release()             { c.released = true; c.rec.add("chrome release") }

type fakeSurface struct {
	rec      *recorder
	canvases []*fakeCanvas
}

func (s *fakeSurface) NewCanvas(r host.Rect) host.Canvas {
	c := &fakeCanvas{rec: s.rec, bounds: r}
	s.canvases = append(s.canvases, c)
	return c
}

type fakeHandle struct {
	name     string
	rec      *recorder
	params   Params
	visible  bool
	cleanups int
	clicks   [][2]int
	hover    bool
}

func (h *fakeHandle) Show()         { h.visible = true; h.rec.add("show %s", h.name) }
func (h *fakeHandle) Hide()         { h.visible = false; h.rec.add("hide %s", h.name) }
func (h *fakeHandle) BringToFront() { h.rec.add("raise %s", h.name) }
func (h *fakeHandle) Cleanup()      { h.cleanups++; h.rec.add("cleanup %s", h.name) }
func (h *fakeHandle) Click(x, y int) {
	h.clicks = append(h.clicks, [2]int{x, y})
}
func (h *fakeHandle) Hover(inside bool) { h.hover = inside }

// fakeBuilder counts Measure and Build calls and keeps every handle it built.
type fakeBuilder struct {
	name     string
	width    int
	errs     []string
	rec      *recorder
	measured int
	handles  []*fakeHandle
}

func (b *fakeBuilder) Name() string          { return b.name }
func (b *fakeBuilder) BuildErrors() []string { return b.errs }
func (b *fakeBuilder) Measure(height int) int {
	b.measured++
	return b.width
}
func (b *fakeBuilder) Build(params Params) Handle {
	h := &fakeHandle{name: b.name, rec: b.rec, params: params}
	b.handles = append(b.handles, h)
	b.rec.add("build %s", b.name)
	return h
}

func builders(bs ...*fakeBuilder) []Builder {
	out := make([]Builder, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}
