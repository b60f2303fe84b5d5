// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/text/text.go
// Summary: Static text widget.

package text

import (
	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/framegrace/texelbar/widgets/base"
	"github.com/gdamore/tcell/v2"
)

// Builder builds a fixed label.
type Builder struct {
	name    string
	text    string
	padding int
	fg, bg  tcell.Color
	errs    []string
}

// New returns a text builder.
func New(name, text string) *Builder {
	b := &Builder{name: name, text: text, padding: 1, fg: tcell.ColorDefault, bg: tcell.ColorDefault}
	if text == "" {
		b.errs = append(b.errs, "text is required")
	}
	return b
}

func (b *Builder) Name() string          { return b.name }
func (b *Builder) BuildErrors() []string { return b.errs }

func (b *Builder) Measure(height int) int {
	return base.TextWidth(b.text) + 2*b.padding
}

func (b *Builder) Build(params panel.Params) panel.Handle {
	fg, bg := b.fg, b.bg
	if fg == tcell.ColorDefault {
		fg = params.TextColor
	}
	if bg == tcell.ColorDefault {
		bg = params.PanelColor
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	return base.New(params, func(width, height int, hovered bool) [][]host.Cell {
		return base.Label(width, height, b.text, style)
	})
}

func init() {
	registry.RegisterBuiltInProvider(func() (*registry.Manifest, registry.Factory) {
		return &registry.Manifest{
				Kind:        "text",
				DisplayName: "Text",
				Description: "Fixed label",
			}, func(decl registry.Decl, env registry.Env) panel.Builder {
				b := New(decl.Name, decl.Params.String("text", ""))
				b.padding = decl.Params.Int("padding", 1)
				if b.padding < 0 {
					b.errs = append(b.errs, "padding cannot be negative")
					b.padding = 0
				}
				for key, dst := range map[string]*tcell.Color{"color": &b.fg, "background": &b.bg} {
					if !decl.Params.Has(key) {
						continue
					}
					c := decl.Params.Color(key, tcell.ColorDefault)
					if c == tcell.ColorDefault {
						b.errs = append(b.errs, "unknown "+key+" "+decl.Params.String(key, ""))
					}
					*dst = c
				}
				return b
			}
	})
}
