// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: panel/widget.go
// Summary: Contract between widget builders and the panel host.
// Usage: Widget packages implement Builder; panels call Build once per screen.

package panel

import (
	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

// Coords is the absolute top-left corner assigned to a widget.
type Coords struct {
	X, Y int
}

// Colors is the background/hover pair every panel hands to its widgets.
type Colors struct {
	Background tcell.Color
	Hover      tcell.Color
	Foreground tcell.Color
}

// Params is what a builder receives when it is asked to build for one panel.
type Params struct {
	Coords     Coords
	Width      int
	Height     int
	PanelColor tcell.Color
	HoverColor tcell.Color
	TextColor  tcell.Color
	ScreenID   int
	Surface    host.Surface
}

// Bounds returns the widget rectangle described by the params.
func (p Params) Bounds() host.Rect {
	return host.Rect{X: p.Coords.X, Y: p.Coords.Y, W: p.Width, H: p.Height}
}

// Handle is a live widget owned by exactly one panel.
type Handle interface {
	Show()
	Hide()
	BringToFront()
	// Cleanup releases everything the widget holds. The panel drops its
	// reference right after.
	Cleanup()
}

// Builder is a deferred widget construction request. A Builder is immutable
// and may be built once per panel.
type Builder interface {
	Name() string
	// BuildErrors lists configuration problems. A builder with errors is
	// never built.
	BuildErrors() []string
	// Measure returns the width the widget needs for a panel of the given
	// height.
	Measure(height int) int
	Build(params Params) Handle
}

// Clicker is implemented by handles that react to clicks. x and y are
// relative to the widget's top-left corner.
type Clicker interface {
	Click(x, y int)
}

// Hoverer is implemented by handles that track the pointer.
type Hoverer interface {
	Hover(inside bool)
}

// Refresher is implemented by handles whose content depends on host state
// that changes outside their own control (window lists, for instance).
type Refresher interface {
	Refresh()
}

// WindowListBuilder builds the screen-specific window list. It receives the
// space left between the left and right regions.
type WindowListBuilder interface {
	BuildWindowList(params Params) Handle
}

// WindowListFunc adapts a function to WindowListBuilder.
type WindowListFunc func(params Params) Handle

// BuildWindowList calls f.
func (f WindowListFunc) BuildWindowList(params Params) Handle {
	return f(params)
}

// BuildingInfo is a Builder assembled from plain functions.
type BuildingInfo struct {
	WidgetName string
	Errors     []string
	Width      func(height int) int
	New        func(params Params) Handle
}

var _ Builder = (*BuildingInfo)(nil)

func (b *BuildingInfo) Name() string          { return b.WidgetName }
func (b *BuildingInfo) BuildErrors() []string { return b.Errors }

func (b *BuildingInfo) Measure(height int) int {
	if b.Width == nil {
		return 0
	}
	return b.Width(height)
}

func (b *BuildingInfo) Build(params Params) Handle {
	return b.New(params)
}
