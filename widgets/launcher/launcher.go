// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/launcher/launcher.go
// Summary: Button that starts an application when clicked.

package launcher

import (
	"log"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/registry"
	"github.com/framegrace/texelbar/widgets/base"
	"github.com/gdamore/tcell/v2"
)

// Builder builds launcher buttons.
type Builder struct {
	name     string
	label    string
	command  string
	launcher host.Launcher
	logger   *log.Logger
	errs     []string
}

// New returns a launcher builder. label defaults to the command.
func New(name, label, command string, launcher host.Launcher, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	b := &Builder{name: name, label: label, command: command, launcher: launcher, logger: logger}
	if command == "" {
		b.errs = append(b.errs, "command is required")
	}
	if launcher == nil {
		b.errs = append(b.errs, "no application launcher available")
	}
	if b.label == "" {
		b.label = command
	}
	return b
}

func (b *Builder) Name() string          { return b.name }
func (b *Builder) BuildErrors() []string { return b.errs }

func (b *Builder) Measure(height int) int {
	return base.TextWidth(b.label) + 2
}

func (b *Builder) Build(params panel.Params) panel.Handle {
	normal := tcell.StyleDefault.Background(params.PanelColor).Foreground(params.TextColor)
	hover := tcell.StyleDefault.Background(params.HoverColor).Foreground(params.TextColor).Bold(true)
	return &button{
		Widget: base.New(params, func(width, height int, hovered bool) [][]host.Cell {
			style := normal
			if hovered {
				style = hover
			}
			return base.Label(width, height, b.label, style)
		}),
		builder:  b,
		screenID: params.ScreenID,
	}
}

type button struct {
	*base.Widget
	builder  *Builder
	screenID int
}

var _ panel.Clicker = (*button)(nil)

func (h *button) Click(x, y int) {
	b := h.builder
	if err := b.launcher.Launch(b.command, h.screenID); err != nil {
		b.logger.Printf("Launcher: Failed to launch %q: %v", b.command, err)
	}
}

func init() {
	registry.RegisterBuiltInProvider(func() (*registry.Manifest, registry.Factory) {
		return &registry.Manifest{
				Kind:        "launcher",
				DisplayName: "App Launcher",
				Description: "Starts an application on the panel's screen",
			}, func(decl registry.Decl, env registry.Env) panel.Builder {
				return New(decl.Name,
					decl.Params.String("label", ""),
					decl.Params.String("command", ""),
					env.Launcher, env.Logger)
			}
	})
}
