// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/termhost_test.go
// Summary: Exercises the terminal host against a simulated tcell screen.

package termhost

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/texelbar/bar"
	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T, screens, w, h int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return New(Options{
		Screen:  screen,
		Screens: screens,
		Logger:  log.New(io.Discard, "", 0),
	}), screen
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func cellsOf(s string) [][]host.Cell {
	row := make([]host.Cell, 0, len(s))
	for _, r := range s {
		row = append(row, host.Cell{Ch: r, Style: tcell.StyleDefault})
	}
	return [][]host.Cell{row}
}

func TestScreensSplitIntoColumns(t *testing.T) {
	h, _ := newTestHost(t, 3, 80, 24)

	screens := h.Screens()
	if len(screens) != 3 {
		t.Fatalf("expected 3 screens, got %d", len(screens))
	}
	wantX := []int{0, 26, 52}
	wantW := []int{26, 26, 28}
	for i, s := range screens {
		if s.ID != i+1 || s.X != wantX[i] || s.Width != wantW[i] || s.Height != 24 || s.Y != 0 {
			t.Fatalf("screen %d: unexpected geometry %#v", i, s)
		}
	}

	h.SetScreenCount(1)
	if got := h.Screens(); len(got) != 1 || got[0].Width != 80 {
		t.Fatalf("expected a single full-width screen, got %#v", got)
	}
}

func TestCanvasesCompositeByZOrder(t *testing.T) {
	h, screen := newTestHost(t, 1, 20, 5)

	below := h.NewCanvas(host.Rect{X: 0, Y: 4, W: 6, H: 1})
	above := h.NewCanvas(host.Rect{X: 3, Y: 4, W: 3, H: 1})
	below.Draw(cellsOf("aaaaaa"))
	above.Draw(cellsOf("bbb"))

	h.Render()
	if got := readScreenLine(screen, 0, 4, 6); got != "      " {
		t.Fatalf("hidden canvases must not draw, got %q", got)
	}

	below.Show()
	above.Show()
	if !h.Dirty() {
		t.Fatalf("showing a canvas should request a redraw")
	}
	h.Render()
	if got := readScreenLine(screen, 0, 4, 6); got != "aaabbb" {
		t.Fatalf("expected top canvas over bottom, got %q", got)
	}

	below.Raise()
	h.Render()
	if got := readScreenLine(screen, 0, 4, 6); got != "aaaaaa" {
		t.Fatalf("expected raised canvas on top, got %q", got)
	}

	below.Release()
	if h.CanvasCount() != 1 {
		t.Fatalf("expected released canvas to be dropped, have %d", h.CanvasCount())
	}
	h.Render()
	if got := readScreenLine(screen, 0, 4, 6); got != "   bbb" {
		t.Fatalf("expected only the remaining canvas, got %q", got)
	}
}

func TestCanvasDrawClipsToBounds(t *testing.T) {
	h, screen := newTestHost(t, 1, 20, 5)
	c := h.NewCanvas(host.Rect{X: 0, Y: 0, W: 3, H: 1})
	c.Draw(append(cellsOf("abcdef"), cellsOf("second")...))
	c.Show()
	h.Render()
	if got := readScreenLine(screen, 0, 0, 6); got != "abc   " {
		t.Fatalf("expected clipped row, got %q", got)
	}
	if got := readScreenLine(screen, 0, 1, 6); got != "      " {
		t.Fatalf("expected second row clipped, got %q", got)
	}
}

func TestWindowTableFocusAndFrames(t *testing.T) {
	h, screen := newTestHost(t, 2, 40, 10)

	first := h.AddWindow("vim", 1, host.Rect{X: 0, Y: 0, W: 10, H: 4})
	second := h.AddWindow("top", 2, host.Rect{X: 22, Y: 1, W: 10, H: 4})

	if got := h.Windows(1); len(got) != 1 || got[0].ID != first || got[0].Focused {
		t.Fatalf("unexpected windows on screen 1: %#v", got)
	}
	focused, ok := h.FocusedWindow()
	if !ok || focused.ID != second {
		t.Fatalf("expected last added window focused, got %#v", focused)
	}

	if !h.FocusAt(3, 2) {
		t.Fatalf("expected click inside window to focus it")
	}
	if focused, _ := h.FocusedWindow(); focused.ID != first {
		t.Fatalf("expected window %d focused, got %d", first, focused.ID)
	}
	if h.FocusAt(15, 8) {
		t.Fatalf("empty desktop must not focus anything")
	}

	if err := h.SetFrame(first, host.Rect{X: 0, Y: 0, W: 12, H: 9}); err != nil {
		t.Fatalf("set frame: %v", err)
	}
	if got := h.Windows(1)[0].Frame; got.H != 9 || got.W != 12 {
		t.Fatalf("frame not applied: %#v", got)
	}
	if err := h.SetFrame(99, host.Rect{}); err != host.ErrNoWindow {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
	if err := h.Focus(99); err != host.ErrNoWindow {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}

	h.Render()
	if got := readScreenLine(screen, 0, 0, 8); !strings.Contains(got, " vim ") {
		t.Fatalf("expected titled frame, got %q", got)
	}

	h.RemoveWindow(first)
	if focused, _ := h.FocusedWindow(); focused.ID != second {
		t.Fatalf("expected focus to fall back to %d, got %d", second, focused.ID)
	}
}

func TestTranslateEvents(t *testing.T) {
	h, _ := newTestHost(t, 1, 20, 5)

	if ev, ok := h.Translate(tcell.NewEventResize(30, 6)); !ok || ev.Type != bar.EventScreensChanged {
		t.Fatalf("expected screens-changed, got %v %v", ev, ok)
	}

	ev, ok := h.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl))
	if !ok || ev.Type != bar.EventHotkey {
		t.Fatalf("expected hotkey event, got %v %v", ev, ok)
	}
	if combo := ev.Payload.(host.Combo); combo != bar.DefaultMaximizeKey {
		t.Fatalf("unexpected combo %v", combo)
	}

	ev, ok = h.Translate(tcell.NewEventMouse(4, 3, tcell.ButtonNone, 0))
	if !ok || ev.Type != bar.EventHover || ev.Payload.(bar.Point) != (bar.Point{X: 4, Y: 3}) {
		t.Fatalf("expected hover at 4,3, got %v %v", ev, ok)
	}
	ev, ok = h.Translate(tcell.NewEventMouse(5, 4, tcell.Button1, 0))
	if !ok || ev.Type != bar.EventClick || ev.Payload.(bar.Point) != (bar.Point{X: 5, Y: 4}) {
		t.Fatalf("expected click at 5,4, got %v %v", ev, ok)
	}
	if _, ok := h.Translate(tcell.NewEventMouse(6, 4, tcell.Button1, 0)); ok {
		t.Fatalf("drag with the button held must not click again")
	}

	if ev, ok := h.Translate(tcell.NewEventInterrupt(windowsChanged{})); !ok || ev.Type != bar.EventWindowsChanged {
		t.Fatalf("expected windows-changed, got %v %v", ev, ok)
	}
	if _, ok := h.Translate(tcell.NewEventInterrupt(nil)); ok {
		t.Fatalf("redraw interrupts are not bar events")
	}
}

func TestLaunchRunsOnPty(t *testing.T) {
	h, _ := newTestHost(t, 1, 40, 10)

	if err := h.Launch("", 1); err == nil {
		t.Fatalf("expected empty command to fail")
	}
	if err := h.Launch("sleep 1", 7); err == nil {
		t.Fatalf("expected unknown screen to fail")
	}

	if err := h.Launch("sleep 30", 1); err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	wins := h.Windows(1)
	if len(wins) != 1 || wins[0].Title != "sleep" || !wins[0].Focused {
		t.Fatalf("expected focused sleep window, got %#v", wins)
	}

	done := make(chan struct{})
	go func() {
		h.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("close did not reap the launched process")
	}
	if got := h.Windows(1); len(got) != 0 {
		t.Fatalf("expected window removed after exit, got %#v", got)
	}
}
