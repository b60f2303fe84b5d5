// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/clock/clock.go
// Summary: Clock widget showing the current time.

package clock

import (
	"time"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/framegrace/texelbar/widgets/base"
	"github.com/gdamore/tcell/v2"
)

const defaultFormat = "15:04"

// widest is a Wednesday in September: the longest weekday and month names.
var widest = time.Date(2000, time.September, 27, 23, 59, 59, 0, time.UTC)

// Builder builds clock widgets.
type Builder struct {
	name     string
	format   string
	interval time.Duration
	color    tcell.Color
	errs     []string
	now      func() time.Time
}

var _ panel.Builder = (*Builder)(nil)

// New returns a clock builder using the given Go time layout.
func New(name, format string) *Builder {
	b := &Builder{
		name:     name,
		format:   format,
		interval: time.Second,
		color:    tcell.ColorDefault,
		now:      time.Now,
	}
	if b.format == "" {
		b.format = defaultFormat
	}
	return b
}

func (b *Builder) Name() string          { return b.name }
func (b *Builder) BuildErrors() []string { return b.errs }

// Measure returns the width of the formatted time plus one cell of padding
// on each side.
func (b *Builder) Measure(height int) int {
	return base.TextWidth(widest.Format(b.format)) + 2
}

func (b *Builder) Build(params panel.Params) panel.Handle {
	fg := b.color
	if fg == tcell.ColorDefault {
		fg = params.TextColor
	}
	style := tcell.StyleDefault.Background(params.PanelColor).Foreground(fg)
	w := base.New(params, func(width, height int, hovered bool) [][]host.Cell {
		return base.Label(width, height, b.now().Format(b.format), style)
	})
	w.Every(b.interval, nil)
	return w
}

func init() {
	registry.RegisterBuiltInProvider(func() (*registry.Manifest, registry.Factory) {
		return &registry.Manifest{
				Kind:        "clock",
				DisplayName: "Clock",
				Description: "Current time in a configurable layout",
			}, func(decl registry.Decl, env registry.Env) panel.Builder {
				b := New(decl.Name, decl.Params.String("format", defaultFormat))
				if ms := decl.Params.Int("interval_ms", 1000); ms > 0 {
					b.interval = time.Duration(ms) * time.Millisecond
				} else {
					b.errs = append(b.errs, "interval_ms must be positive")
				}
				if decl.Params.Has("color") {
					b.color = decl.Params.Color("color", tcell.ColorDefault)
					if b.color == tcell.ColorDefault {
						b.errs = append(b.errs, "unknown color "+decl.Params.String("color", ""))
					}
				}
				return b
			}
	})
}
