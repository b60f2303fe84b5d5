// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/base/base.go
// Summary: Canvas-backed widget handle shared by the built-in widgets.
// Usage: Widgets supply a render function and optionally a ticker; the base
// handles show/hide/raise/cleanup and hover state.

package base

import (
	"sync"
	"time"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
)

// RenderFunc draws the widget content for the given size.
type RenderFunc func(width, height int, hovered bool) [][]host.Cell

// Widget implements panel.Handle on top of a host canvas.
type Widget struct {
	params panel.Params
	canvas host.Canvas
	render RenderFunc

	mu      sync.Mutex
	hovered bool
	closed  bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

var (
	_ panel.Handle  = (*Widget)(nil)
	_ panel.Hoverer = (*Widget)(nil)
)

// New creates the widget canvas and draws the first frame. The canvas stays
// hidden until the panel shows it.
func New(params panel.Params, render RenderFunc) *Widget {
	w := &Widget{
		params: params,
		canvas: params.Surface.NewCanvas(params.Bounds()),
		render: render,
		stop:   make(chan struct{}),
	}
	w.Redraw()
	return w
}

// Params returns the parameters the widget was built with.
func (w *Widget) Params() panel.Params { return w.params }

// Redraw renders the widget again.
func (w *Widget) Redraw() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.canvas.Draw(w.render(w.params.Width, w.params.Height, w.hovered))
}

// Every calls tick and redraws at every interval until Cleanup.
func (w *Widget) Every(interval time.Duration, tick func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if tick != nil {
					tick()
				}
				w.Redraw()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *Widget) Show()         { w.canvas.Show() }
func (w *Widget) Hide()         { w.canvas.Hide() }
func (w *Widget) BringToFront() { w.canvas.Raise() }

// Hover redraws the widget with the new hover state.
func (w *Widget) Hover(inside bool) {
	w.mu.Lock()
	changed := w.hovered != inside
	w.hovered = inside
	w.mu.Unlock()
	if changed {
		w.Redraw()
	}
}

// Cleanup stops the ticker and releases the canvas.
func (w *Widget) Cleanup() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.stop)
	w.mu.Unlock()

	w.wg.Wait()
	w.canvas.Release()
}
