// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/linegraph/linegraph.go
// Summary: Sparkline of a periodically sampled value.

package linegraph

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/framegrace/texelbar/widgets/base"
	"github.com/gdamore/tcell/v2"
)

var levels = []rune("▁▂▃▄▅▆▇█")

// Builder builds line graphs. Every panel gets its own sample history.
type Builder struct {
	name     string
	source   Source
	samples  int
	interval time.Duration
	max      float64
	color    tcell.Color
	dots     bool
	logger   *log.Logger
	errs     []string
}

// New returns a graph builder sampling src every interval and keeping
// samples values.
func New(name string, src Source, samples int, interval time.Duration) *Builder {
	b := &Builder{
		name:     name,
		source:   src,
		samples:  samples,
		interval: interval,
		color:    tcell.ColorDefault,
		logger:   log.Default(),
	}
	if src == nil {
		b.errs = append(b.errs, "a sample source is required")
	}
	if samples <= 0 {
		b.errs = append(b.errs, "samples must be positive")
	}
	if interval <= 0 {
		b.errs = append(b.errs, "interval_ms must be positive")
	}
	return b
}

func (b *Builder) Name() string          { return b.name }
func (b *Builder) BuildErrors() []string { return b.errs }

// Measure returns one cell per sample.
func (b *Builder) Measure(height int) int { return b.samples }

func (b *Builder) Build(params panel.Params) panel.Handle {
	g := &graph{builder: b, values: make([]float64, 0, b.samples)}
	fg := b.color
	if fg == tcell.ColorDefault {
		fg = params.TextColor
	}
	style := tcell.StyleDefault.Background(params.PanelColor).Foreground(fg)
	w := base.New(params, func(width, height int, hovered bool) [][]host.Cell {
		return g.render(width, height, style)
	})
	g.sample()
	w.Redraw()
	w.Every(b.interval, g.sample)
	return w
}

type graph struct {
	builder *Builder
	mu      sync.Mutex
	values  []float64
	failed  bool
}

// level maps v onto 0..steps-1 against max, or the largest value shown when
// no max is configured.
func (g *graph) level(v float64, values []float64, steps int) int {
	scale := g.builder.max
	if scale <= 0 {
		for _, other := range values {
			if other > scale {
				scale = other
			}
		}
	}
	if scale <= 0 {
		scale = 1
	}
	if v < 0 {
		v = 0
	}
	if v > scale {
		v = scale
	}
	return int(v / scale * float64(steps-1))
}

func (g *graph) sample() {
	v, err := g.builder.source()
	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		if !g.failed {
			g.builder.logger.Printf("LineGraph: %q sample failed: %v", g.builder.name, err)
			g.failed = true
		}
		return
	}
	g.failed = false
	if len(g.values) == g.builder.samples {
		copy(g.values, g.values[1:])
		g.values = g.values[:len(g.values)-1]
	}
	g.values = append(g.values, v)
}

// render draws the newest sample in the rightmost column. The bottom row
// holds the sparkline; taller panels stack full blocks above it.
func (g *graph) render(width, height int, style tcell.Style) [][]host.Cell {
	buf := base.Fill(width, height, style)
	if height == 0 {
		return buf
	}
	g.mu.Lock()
	values := append([]float64(nil), g.values...)
	g.mu.Unlock()

	if g.builder.dots {
		g.plotDots(buf, values, style)
		return buf
	}
	steps := height * len(levels)
	for i, v := range values {
		x := width - len(values) + i
		if x < 0 {
			continue
		}
		n := g.level(v, values, steps)
		for y := height - 1; y >= 0 && n >= 0; y-- {
			if n >= len(levels) {
				buf[y][x] = host.Cell{Ch: levels[len(levels)-1], Style: style}
				n -= len(levels)
				continue
			}
			buf[y][x] = host.Cell{Ch: levels[n], Style: style}
			n = -1
		}
	}
	return buf
}

// factory reads the shared graph parameters; dots selects the dot renderer.
func factory(dots bool) registry.Factory {
	return func(decl registry.Decl, env registry.Env) panel.Builder {
		name := decl.Params.String("source", "")
		src, ok := lookupSource(name)
		interval := time.Duration(decl.Params.Int("interval_ms", 1000)) * time.Millisecond
		b := New(decl.Name, src, decl.Params.Int("samples", 10), interval)
		b.dots = dots
		if !ok {
			// Replaces the generic missing-source error New reported.
			b.errs[0] = fmt.Sprintf("unknown source %q", name)
		}
		if env.Logger != nil {
			b.logger = env.Logger
		}
		b.max = float64(decl.Params.Int("max", 0))
		if decl.Params.Has("color") {
			b.color = decl.Params.Color("color", tcell.ColorDefault)
			if b.color == tcell.ColorDefault {
				b.errs = append(b.errs, "unknown color "+decl.Params.String("color", ""))
			}
		}
		return b
	}
}

func init() {
	registry.RegisterBuiltInProvider(func() (*registry.Manifest, registry.Factory) {
		return &registry.Manifest{
			Kind:        "linegraph",
			DisplayName: "Line Graph",
			Description: "Sparkline of a sampled value such as the load average",
		}, factory(false)
	})
	registry.RegisterBuiltInProvider(func() (*registry.Manifest, registry.Factory) {
		return &registry.Manifest{
			Kind:        "dotgraph",
			DisplayName: "Dot Graph",
			Description: "One dot per sample of a sampled value",
		}, factory(true)
	})
}
