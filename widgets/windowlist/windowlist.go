// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/windowlist/windowlist.go
// Summary: Per-screen list of open windows filling the middle of a panel.
// Usage: bar.Options.WindowList = windowlist.ForScreen(windows, logger).

package windowlist

import (
	"log"
	"sync"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/framegrace/texelbar/widgets/base"
	"github.com/gdamore/tcell/v2"
)

// maxButtonWidth caps the width of a single window button.
const maxButtonWidth = 24

// Builder builds the window list of one screen.
type Builder struct {
	windows  host.WindowManager
	screenID int
	logger   *log.Logger
}

// ForScreen returns the factory the bar uses to get a screen's builder.
func ForScreen(windows host.WindowManager, logger *log.Logger) func(screenID int) panel.WindowListBuilder {
	if logger == nil {
		logger = log.Default()
	}
	return func(screenID int) panel.WindowListBuilder {
		return &Builder{windows: windows, screenID: screenID, logger: logger}
	}
}

func (b *Builder) BuildWindowList(params panel.Params) panel.Handle {
	l := &list{builder: b}
	normal := tcell.StyleDefault.Background(params.PanelColor).Foreground(params.TextColor)
	focused := tcell.StyleDefault.Background(params.HoverColor).Foreground(params.TextColor).Bold(true)
	l.Widget = base.New(params, func(width, height int, hovered bool) [][]host.Cell {
		return l.render(width, height, normal, focused)
	})
	return l
}

type list struct {
	*base.Widget
	builder *Builder

	mu      sync.Mutex
	buttons []button
}

type button struct {
	x, width int
	window   host.Window
}

var (
	_ panel.Clicker   = (*list)(nil)
	_ panel.Refresher = (*list)(nil)
)

// layout splits width evenly between windows, capped at maxButtonWidth.
func layout(windows []host.Window, width int) []button {
	if len(windows) == 0 || width <= 0 {
		return nil
	}
	each := width / len(windows)
	if each > maxButtonWidth {
		each = maxButtonWidth
	}
	if each == 0 {
		each = 1
	}
	buttons := make([]button, 0, len(windows))
	for i, w := range windows {
		x := i * each
		if x+each > width {
			break
		}
		buttons = append(buttons, button{x: x, width: each, window: w})
	}
	return buttons
}

func (l *list) render(width, height int, normal, focused tcell.Style) [][]host.Cell {
	buf := base.Fill(width, height, normal)
	if height == 0 {
		return buf
	}
	buttons := layout(l.builder.windows.Windows(l.builder.screenID), width)
	l.mu.Lock()
	l.buttons = buttons
	l.mu.Unlock()

	for _, btn := range buttons {
		style := normal
		if btn.window.Focused {
			style = focused
			for y := range buf {
				for x := btn.x; x < btn.x+btn.width; x++ {
					buf[y][x].Style = style
				}
			}
		}
		title := btn.window.Title
		if btn.width > 2 {
			title = truncate(title, btn.width-2)
			base.Put(buf, btn.x+1, height/2, title, style)
		}
	}
	return buf
}

func truncate(s string, width int) string {
	if base.TextWidth(s) <= width {
		return s
	}
	out := ""
	for _, r := range s {
		if base.TextWidth(out+string(r)+"…") > width {
			break
		}
		out += string(r)
	}
	return out + "…"
}

// Click focuses the window under the pointer.
func (l *list) Click(x, y int) {
	l.mu.Lock()
	var target *host.Window
	for _, btn := range l.buttons {
		if x >= btn.x && x < btn.x+btn.width {
			w := btn.window
			target = &w
			break
		}
	}
	l.mu.Unlock()
	if target == nil {
		return
	}
	if err := l.builder.windows.Focus(target.ID); err != nil {
		l.builder.logger.Printf("WindowList: Failed to focus window %d: %v", target.ID, err)
	}
	l.Redraw()
}

// Refresh re-reads the window table.
func (l *list) Refresh() {
	l.Redraw()
}
