// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: panel/panel.go
// Summary: Per-screen taskbar strip owning its chrome and widget handles.
// Usage: Created by the bar orchestrator once per attached screen.

package panel

import (
	"log"

	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

type state int

const (
	stateActive state = iota
	stateDestroyed
)

// Options configures a panel.
type Options struct {
	ScreenID int
	X, Y     int
	Width    int
	Height   int
	// Left and Right must already be free of build errors.
	Left       []Builder
	Right      []Builder
	WindowList WindowListBuilder
	Colors     Colors
	Surface    host.Surface
	Logger     *log.Logger
}

// Widget is a built widget together with its placement.
type Widget struct {
	Name   string
	Bounds host.Rect
	Handle Handle
}

// Panel is the taskbar strip of one screen.
type Panel struct {
	id       string
	screenID int
	bounds   host.Rect
	colors   Colors
	logger   *log.Logger

	chrome     host.Canvas
	widgets    []*Widget // construction order
	windowList *Widget
	hovered    *Widget
	hidden     bool
	state      state
}

// New builds every widget for one screen and shows the panel.
func New(opts Options) *Panel {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := &Panel{
		id:       uuid.NewString(),
		screenID: opts.ScreenID,
		bounds:   host.Rect{X: opts.X, Y: opts.Y, W: opts.Width, H: opts.Height},
		colors:   opts.Colors,
		logger:   logger,
	}

	p.chrome = opts.Surface.NewCanvas(p.bounds)
	p.chrome.Draw(fill(opts.Width, opts.Height, tcell.StyleDefault.Background(opts.Colors.Background)))
	p.chrome.Show()

	arr := Arrange(opts.X, opts.Width, opts.Height, opts.Left, opts.Right)
	if arr.Overflow > 0 {
		logger.Printf("Panel: screen %d widgets overflow the panel by %d", opts.ScreenID, arr.Overflow)
	}

	for _, slots := range [][]Slot{arr.Left, arr.Right} {
		for _, s := range slots {
			params := p.params(opts.Surface, s.X, s.Width)
			b := s.Builder
			if w := p.build(b.Name(), params, b.Build); w != nil {
				p.widgets = append(p.widgets, w)
			}
		}
	}

	if opts.WindowList != nil {
		if gap := arr.Gap(); gap > 0 {
			params := p.params(opts.Surface, arr.LeftEdge, gap)
			p.windowList = p.build("window list", params, opts.WindowList.BuildWindowList)
			if p.windowList != nil {
				p.widgets = append(p.widgets, p.windowList)
			}
		} else {
			logger.Printf("Panel: screen %d has no room for the window list", opts.ScreenID)
		}
	}

	// Widgets are shown only once every one of them has been positioned.
	for _, w := range p.widgets {
		w.Handle.Show()
		w.Handle.BringToFront()
	}
	return p
}

// build runs one widget construction. A panic or a nil handle loses only
// that slot; the rest of the panel is still built.
func (p *Panel) build(name string, params Params, build func(Params) Handle) (w *Widget) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("Panel: widget %q failed to build: %v", name, r)
			w = nil
		}
	}()
	h := build(params)
	if h == nil {
		p.logger.Printf("Panel: widget %q failed to build: no handle", name)
		return nil
	}
	return &Widget{Name: name, Bounds: params.Bounds(), Handle: h}
}

func (p *Panel) params(surface host.Surface, x, width int) Params {
	return Params{
		Coords:     Coords{X: x, Y: p.bounds.Y},
		Width:      width,
		Height:     p.bounds.H,
		PanelColor: p.colors.Background,
		HoverColor: p.colors.Hover,
		TextColor:  p.colors.Foreground,
		ScreenID:   p.screenID,
		Surface:    surface,
	}
}

// ID returns the unique panel identifier.
func (p *Panel) ID() string { return p.id }

// ScreenID returns the screen the panel was built for.
func (p *Panel) ScreenID() int { return p.screenID }

// Bounds returns the panel rectangle.
func (p *Panel) Bounds() host.Rect { return p.bounds }

// Widgets returns the built widgets in construction order. The window list,
// when present, is last.
func (p *Panel) Widgets() []*Widget {
	return append([]*Widget(nil), p.widgets...)
}

// Destroyed reports whether Destroy has run.
func (p *Panel) Destroyed() bool { return p.state == stateDestroyed }

// Contains reports whether the point is on the panel.
func (p *Panel) Contains(x, y int) bool {
	return p.state == stateActive && !p.hidden && p.bounds.Contains(x, y)
}

func (p *Panel) widgetAt(x, y int) *Widget {
	if !p.Contains(x, y) {
		return nil
	}
	for _, w := range p.widgets {
		if w.Bounds.Contains(x, y) {
			return w
		}
	}
	return nil
}

// Click forwards a click to the widget under the point. It reports whether
// the point was on the panel.
func (p *Panel) Click(x, y int) bool {
	if !p.Contains(x, y) {
		return false
	}
	if w := p.widgetAt(x, y); w != nil {
		if c, ok := w.Handle.(Clicker); ok {
			c.Click(x-w.Bounds.X, y-w.Bounds.Y)
		}
	}
	return true
}

// Hover moves the hover state to the widget under the point, if any.
func (p *Panel) Hover(x, y int) bool {
	target := p.widgetAt(x, y)
	if target == p.hovered {
		return target != nil
	}
	if h, ok := handleOf(p.hovered).(Hoverer); ok {
		h.Hover(false)
	}
	p.hovered = target
	if h, ok := handleOf(target).(Hoverer); ok {
		h.Hover(true)
	}
	return target != nil
}

func handleOf(w *Widget) Handle {
	if w == nil {
		return nil
	}
	return w.Handle
}

// Refresh asks widgets that depend on host state to redraw.
func (p *Panel) Refresh() {
	if p.state != stateActive {
		return
	}
	for _, w := range p.widgets {
		if r, ok := w.Handle.(Refresher); ok {
			r.Refresh()
		}
	}
}

// Hide hides the chrome and every widget.
func (p *Panel) Hide() {
	if p.state != stateActive || p.hidden {
		return
	}
	p.Hover(-1, -1)
	for _, w := range p.widgets {
		w.Handle.Hide()
	}
	p.chrome.Hide()
	p.hidden = true
}

// Show reverses Hide.
func (p *Panel) Show() {
	if p.state != stateActive || !p.hidden {
		return
	}
	p.chrome.Show()
	p.chrome.Raise()
	for _, w := range p.widgets {
		w.Handle.Show()
		w.Handle.BringToFront()
	}
	p.hidden = false
}

// Destroy cleans up every widget in construction order and releases the
// chrome. The panel cannot be used afterwards.
func (p *Panel) Destroy() {
	if p.state == stateDestroyed {
		p.logger.Printf("Panel: %s already destroyed", p.id)
		return
	}
	for _, w := range p.widgets {
		w.Handle.Cleanup()
	}
	p.widgets = nil
	p.windowList = nil
	p.hovered = nil
	p.chrome.Release()
	p.chrome = nil
	p.state = stateDestroyed
}

func fill(w, h int, style tcell.Style) [][]host.Cell {
	buf := make([][]host.Cell, h)
	for y := range buf {
		buf[y] = make([]host.Cell, w)
		for x := range buf[y] {
			buf[y][x] = host.Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}
