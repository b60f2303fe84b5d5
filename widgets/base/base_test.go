// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package base

import (
	"sync"
	"testing"
	"time"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/gdamore/tcell/v2"
)

type testCanvas struct {
	mu       sync.Mutex
	draws    int
	visible  bool
	raised   int
	released bool
	last     [][]host.Cell
}

func (c *testCanvas) Bounds() host.Rect { return host.Rect{} }
func (c *testCanvas) Draw(buf [][]host.Cell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draws++
	c.last = buf
}
func (c *testCanvas) Show()    { c.visible = true }
func (c *testCanvas) Hide()    { c.visible = false }
func (c *testCanvas) Raise()   { c.raised++ }
func (c *testCanvas) Release() { c.released = true }

func (c *testCanvas) drawCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draws
}

type testSurface struct{ canvas *testCanvas }

func (s *testSurface) NewCanvas(host.Rect) host.Canvas { return s.canvas }

func TestWidgetLifecycle(t *testing.T) {
	canvas := &testCanvas{}
	var hoveredSeen bool
	w := New(panel.Params{Width: 4, Height: 1, Surface: &testSurface{canvas}}, func(width, height int, hovered bool) [][]host.Cell {
		hoveredSeen = hovered
		return Fill(width, height, tcell.StyleDefault)
	})

	if canvas.drawCount() != 1 || canvas.visible {
		t.Fatalf("expected one hidden initial frame")
	}
	w.Show()
	w.BringToFront()
	if !canvas.visible || canvas.raised != 1 {
		t.Fatalf("show/raise not forwarded")
	}
	w.Hover(true)
	if !hoveredSeen || canvas.drawCount() != 2 {
		t.Fatalf("hover should redraw with hover state")
	}
	w.Hover(true)
	if canvas.drawCount() != 2 {
		t.Fatalf("unchanged hover should not redraw")
	}
	w.Hide()
	if canvas.visible {
		t.Fatalf("hide not forwarded")
	}

	w.Cleanup()
	w.Cleanup()
	if !canvas.released {
		t.Fatalf("canvas not released")
	}
	w.Redraw()
	if canvas.drawCount() != 2 {
		t.Fatalf("redraw after cleanup must be ignored")
	}
}

func TestEveryStopsOnCleanup(t *testing.T) {
	canvas := &testCanvas{}
	w := New(panel.Params{Width: 1, Height: 1, Surface: &testSurface{canvas}}, func(width, height int, hovered bool) [][]host.Cell {
		return Fill(width, height, tcell.StyleDefault)
	})
	ticks := make(chan struct{}, 16)
	w.Every(time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker never fired")
	}
	w.Cleanup()
	n := canvas.drawCount()
	time.Sleep(10 * time.Millisecond)
	if canvas.drawCount() != n {
		t.Fatalf("ticker kept drawing after cleanup")
	}
}

func TestLabelCentersAndTruncates(t *testing.T) {
	buf := Label(7, 1, "abc", tcell.StyleDefault)
	got := ""
	for _, c := range buf[0] {
		got += string(c.Ch)
	}
	if got != "  abc  " {
		t.Fatalf("label = %q", got)
	}

	buf = Label(4, 1, "abcdef", tcell.StyleDefault)
	if buf[0][3].Ch != '…' {
		t.Fatalf("expected ellipsis, got %q", buf[0][3].Ch)
	}
}

func TestPutHandlesWideRunes(t *testing.T) {
	buf := Fill(3, 1, tcell.StyleDefault)
	end := Put(buf, 0, 0, "日本", tcell.StyleDefault)
	if end != 2 || buf[0][0].Ch != '日' {
		t.Fatalf("wide rune placement wrong: end=%d", end)
	}
	if TextWidth("日本") != 4 {
		t.Fatalf("TextWidth should count wide runes twice")
	}
}
