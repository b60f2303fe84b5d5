// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/termhost.go
// Summary: tcell-backed host: virtual screens, canvases and composition.
// Usage: cmd/texelbar creates one Host around the terminal screen and drives
// Render from its event loop.

package termhost

import (
	"fmt"
	"log"
	"sync"

	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

// Options configures a Host.
type Options struct {
	Screen tcell.Screen
	// Screens is the number of virtual screens the terminal is split into.
	Screens int
	// Desktop is the background color behind windows and panels.
	Desktop tcell.Color
	Logger  *log.Logger
}

// Host implements the host interfaces on a single terminal.
type Host struct {
	screen  tcell.Screen
	desktop tcell.Color
	logger  *log.Logger

	mu       sync.Mutex
	count    int
	canvases []*canvas // bottom to top
	dirty    bool

	windows      []*window
	nextWindowID int
	focusedID    int
	lastButtons  tcell.ButtonMask
	procs        sync.WaitGroup
}

var (
	_ host.ScreenEnumerator = (*Host)(nil)
	_ host.Surface          = (*Host)(nil)
	_ host.WindowManager    = (*Host)(nil)
	_ host.Launcher         = (*Host)(nil)
)

// New wraps an initialised tcell screen.
func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	count := opts.Screens
	if count < 1 {
		count = 1
	}
	return &Host{
		screen:       opts.Screen,
		desktop:      opts.Desktop,
		logger:       logger,
		count:        count,
		nextWindowID: 1,
		dirty:        true,
	}
}

// SetScreenCount changes the number of virtual screens. Callers dispatch a
// screens-changed event afterwards.
func (h *Host) SetScreenCount(n int) {
	if n < 1 {
		n = 1
	}
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
	h.markDirty()
}

// Screens splits the terminal into equal columns; the last one takes the
// remainder.
func (h *Host) Screens() []host.ScreenInfo {
	h.mu.Lock()
	count := h.count
	h.mu.Unlock()
	return h.screensFor(count)
}

func (h *Host) screensFor(count int) []host.ScreenInfo {
	w, ht := h.screen.Size()
	if w <= 0 || ht <= 0 {
		return nil
	}
	if count > w {
		count = w
	}
	each := w / count
	screens := make([]host.ScreenInfo, 0, count)
	for i := 0; i < count; i++ {
		width := each
		if i == count-1 {
			width = w - each*i
		}
		screens = append(screens, host.ScreenInfo{
			ID:     i + 1,
			Name:   fmt.Sprintf("term-%d", i+1),
			X:      each * i,
			Y:      0,
			Width:  width,
			Height: ht,
		})
	}
	return screens
}

func (h *Host) screenByID(id int) (host.ScreenInfo, bool) {
	for _, s := range h.screensFor(h.count) {
		if s.ID == id {
			return s, true
		}
	}
	return host.ScreenInfo{}, false
}

// markDirty requests a redraw from the event loop.
func (h *Host) markDirty() {
	h.mu.Lock()
	wasDirty := h.dirty
	h.dirty = true
	h.mu.Unlock()
	if !wasDirty {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Dirty reports whether something changed since the last Render.
func (h *Host) Dirty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dirty
}

// Render composites windows and visible canvases onto the terminal.
func (h *Host) Render() {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ht := h.screen.Size()
	bg := tcell.StyleDefault.Background(h.desktop)
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			h.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, win := range h.windows {
		h.drawWindowLocked(win)
	}

	for _, c := range h.canvases {
		if !c.visible {
			continue
		}
		for dy, row := range c.buf {
			for dx, cell := range row {
				if cell.Ch == 0 {
					// Trailing half of a wide rune.
					continue
				}
				h.screen.SetContent(c.bounds.X+dx, c.bounds.Y+dy, cell.Ch, nil, cell.Style)
			}
		}
	}

	h.screen.Show()
	h.dirty = false
}
