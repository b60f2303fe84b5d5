// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"testing"

	"github.com/framegrace/texelbar/config"
	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/gdamore/tcell/v2"
)

type captureCanvas struct{ last [][]host.Cell }

func (c *captureCanvas) Bounds() host.Rect      { return host.Rect{} }
func (c *captureCanvas) Draw(buf [][]host.Cell) { c.last = buf }
func (c *captureCanvas) Show()                  {}
func (c *captureCanvas) Hide()                  {}
func (c *captureCanvas) Raise()                 {}
func (c *captureCanvas) Release()               {}

type captureSurface struct{ canvas *captureCanvas }

func (s *captureSurface) NewCanvas(host.Rect) host.Canvas { return s.canvas }

func TestTextRendersWithPanelColors(t *testing.T) {
	b := New("greeting", "hi")
	if b.Measure(1) != 4 {
		t.Fatalf("Measure = %d, want 4", b.Measure(1))
	}
	canvas := &captureCanvas{}
	h := b.Build(panel.Params{Width: 4, Height: 1, PanelColor: tcell.ColorSilver, TextColor: tcell.ColorBlack, Surface: &captureSurface{canvas}})
	defer h.Cleanup()

	cell := canvas.last[0][1]
	fg, bg, _ := cell.Style.Decompose()
	if cell.Ch != 'h' || fg != tcell.ColorBlack || bg != tcell.ColorSilver {
		t.Fatalf("unexpected cell %q fg=%v bg=%v", cell.Ch, fg, bg)
	}
}

func TestTextFactoryValidation(t *testing.T) {
	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	builders := reg.Builders([]registry.Decl{
		{Kind: "text", Name: "empty", Params: config.Section{}},
		{Kind: "text", Name: "colors", Params: config.Section{"text": "x", "color": "bogus", "padding": -1}},
		{Kind: "text", Name: "fine", Params: config.Section{"text": "x", "background": "navy", "padding": 0}},
	}, registry.Env{})

	if len(builders[0].BuildErrors()) != 1 {
		t.Fatalf("missing text should be reported")
	}
	if len(builders[1].BuildErrors()) != 2 {
		t.Fatalf("expected padding and color errors, got %v", builders[1].BuildErrors())
	}
	if len(builders[2].BuildErrors()) != 0 || builders[2].Measure(1) != 1 {
		t.Fatalf("valid declaration rejected: %v", builders[2].BuildErrors())
	}
}
