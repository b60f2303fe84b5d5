// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: bar/bar.go
// Summary: Orchestrates widget registration, panel creation per screen and teardown.
// Usage: Register builders with AddLeft/AddRight, call Start, feed host events
// through Dispatch and call Stop on shutdown.

package bar

import (
	"errors"
	"log"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/gdamore/tcell/v2"
)

// ErrAlreadyStarted is returned by Start when the bar is already running.
var ErrAlreadyStarted = errors.New("bar: already started")

// DefaultMaximizeKey vertically maximizes the focused window.
var DefaultMaximizeKey = host.Combo{Mods: tcell.ModCtrl, Key: tcell.KeyUp}

// Options configures a Bar.
type Options struct {
	Version     string
	PanelHeight int
	Colors      panel.Colors

	Screens host.ScreenEnumerator
	Surface host.Surface
	// Windows is optional; without it the maximize hotkey does nothing.
	Windows host.WindowManager
	// WindowList returns the window list builder for a screen. Optional.
	WindowList func(screenID int) panel.WindowListBuilder

	// MaximizeKey defaults to DefaultMaximizeKey.
	MaximizeKey host.Combo
	Logger      *log.Logger
}

// Bar owns one panel per screen. It is not safe for concurrent use: every
// call is expected from the host event loop.
type Bar struct {
	opts   Options
	logger *log.Logger
	layout *registry.Layout

	started bool
	left    []panel.Builder
	right   []panel.Builder
	panels  []*panel.Panel
	hotkeys map[host.Combo]func()
}

// New creates a stopped bar.
func New(opts Options) *Bar {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaximizeKey == (host.Combo{}) {
		opts.MaximizeKey = DefaultMaximizeKey
	}
	return &Bar{
		opts:    opts,
		logger:  logger,
		layout:  registry.NewLayout(),
		hotkeys: make(map[host.Combo]func()),
	}
}

// AddLeft registers builders for the left region of every panel.
func (b *Bar) AddLeft(builders ...panel.Builder) error {
	return b.layout.AddLeft(builders...)
}

// AddRight registers builders for the right region of every panel.
func (b *Bar) AddRight(builders ...panel.Builder) error {
	return b.layout.AddRight(builders...)
}

// Start filters the registered builders and creates one panel per screen.
func (b *Bar) Start() error {
	if b.started {
		return ErrAlreadyStarted
	}
	b.logger.Printf("Bar: Version: %s", b.opts.Version)

	b.hotkeys[b.opts.MaximizeKey] = b.verticallyMaximizeFocused

	left, right := b.layout.Freeze()
	b.left, _ = panel.Partition(left, b.logger)
	b.right, _ = panel.Partition(right, b.logger)

	b.buildPanels()
	b.started = true
	return nil
}

func (b *Bar) buildPanels() {
	for _, screen := range b.opts.Screens.Screens() {
		b.logger.Printf("Bar: Adding panel for screen %s (id: %d)", screen.Name, screen.ID)

		var windowList panel.WindowListBuilder
		if b.opts.WindowList != nil {
			windowList = b.opts.WindowList(screen.ID)
		}
		b.panels = append(b.panels, panel.New(panel.Options{
			ScreenID:   screen.ID,
			X:          screen.X,
			Y:          screen.Y + screen.Height - b.opts.PanelHeight,
			Width:      screen.Width,
			Height:     b.opts.PanelHeight,
			Left:       b.left,
			Right:      b.right,
			WindowList: windowList,
			Colors:     b.opts.Colors,
			Surface:    b.opts.Surface,
			Logger:     b.logger,
		}))
	}
}

func (b *Bar) destroyPanels() {
	for _, p := range b.panels {
		p.Destroy()
	}
	b.panels = nil
}

// Stop destroys every panel and clears all registrations so that a later
// registration and Start behave like the first run.
// Registrations made without a Start are dropped too.
func (b *Bar) Stop() {
	if b.started {
		b.destroyPanels()
		b.logger.Printf("Bar: Stopped")
	}
	b.layout.Reset()
	b.left = nil
	b.right = nil
	b.hotkeys = make(map[host.Combo]func())
	b.started = false
}

// Started reports whether the bar is running.
func (b *Bar) Started() bool { return b.started }

// Panels returns the live panels in screen order.
func (b *Bar) Panels() []*panel.Panel {
	return append([]*panel.Panel(nil), b.panels...)
}

// Dispatch handles one host event. It reports whether the event was
// consumed. Events are ignored while the bar is stopped.
func (b *Bar) Dispatch(ev Event) bool {
	if !b.started {
		return false
	}
	switch ev.Type {
	case EventScreensChanged:
		b.logger.Printf("Bar: Screens changed, rebuilding panels")
		b.destroyPanels()
		b.buildPanels()
		return true

	case EventWindowsChanged:
		for _, p := range b.panels {
			p.Refresh()
		}
		return true

	case EventHotkey:
		combo, ok := ev.Payload.(host.Combo)
		if !ok {
			return false
		}
		if action, ok := b.hotkeys[combo]; ok {
			action()
			return true
		}
		return false

	case EventClick:
		pt, ok := ev.Payload.(Point)
		if !ok {
			return false
		}
		for _, p := range b.panels {
			if p.Click(pt.X, pt.Y) {
				return true
			}
		}
		return false

	case EventHover:
		pt, ok := ev.Payload.(Point)
		if !ok {
			return false
		}
		hit := false
		for _, p := range b.panels {
			if p.Hover(pt.X, pt.Y) {
				hit = true
			}
		}
		return hit
	}
	return false
}

// verticallyMaximizeFocused stretches the focused window over its screen,
// keeping its horizontal placement and leaving room for the panel.
func (b *Bar) verticallyMaximizeFocused() {
	if b.opts.Windows == nil {
		return
	}
	w, ok := b.opts.Windows.FocusedWindow()
	if !ok {
		return
	}
	for _, screen := range b.opts.Screens.Screens() {
		if screen.ID != w.ScreenID {
			continue
		}
		frame := host.Rect{
			X: w.Frame.X,
			Y: screen.Y,
			W: w.Frame.W,
			H: screen.Height - b.opts.PanelHeight,
		}
		if err := b.opts.Windows.SetFrame(w.ID, frame); err != nil {
			b.logger.Printf("Bar: Failed to maximize window %d: %v", w.ID, err)
		}
		return
	}
	b.logger.Printf("Bar: Focused window %d is on unknown screen %d", w.ID, w.ScreenID)
}
