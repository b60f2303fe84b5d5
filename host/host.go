// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/host.go
// Summary: Collaborator interfaces the panel core consumes from the desktop host.
// Usage: Implemented by host/term for terminals and by fakes in tests.

package host

import (
	"errors"

	texelcore "github.com/framegrace/texelui/core"
)

// Cell is a single styled character on a canvas.
type Cell = texelcore.Cell

// ErrNoWindow is returned when a window id does not resolve.
var ErrNoWindow = errors.New("host: no such window")

// Rect is an absolute rectangle in host units.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ScreenInfo describes one attached screen. The core never mutates it.
type ScreenInfo struct {
	ID     int
	Name   string
	X, Y   int
	Width  int
	Height int
}

// Bounds returns the screen geometry as a Rect.
func (s ScreenInfo) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// ScreenEnumerator supplies the currently attached screens in a stable order.
type ScreenEnumerator interface {
	Screens() []ScreenInfo
}

// Canvas is a rectangular drawable owned by a single panel or widget.
// A new canvas starts hidden.
type Canvas interface {
	Bounds() Rect
	Draw(buf [][]Cell)
	Show()
	Hide()
	// Raise moves the canvas above every other canvas.
	Raise()
	// Release removes the canvas from the host. The canvas must not be used
	// afterwards.
	Release()
}

// Surface creates canvases.
type Surface interface {
	NewCanvas(r Rect) Canvas
}

// Window is a snapshot of a top-level application window.
type Window struct {
	ID       int
	Title    string
	ScreenID int
	Frame    Rect
	Focused  bool
}

// WindowManager exposes the host's window table.
type WindowManager interface {
	Windows(screenID int) []Window
	FocusedWindow() (Window, bool)
	SetFrame(id int, frame Rect) error
	Focus(id int) error
}

// Launcher starts an application on a given screen.
type Launcher interface {
	Launch(command string, screenID int) error
}
