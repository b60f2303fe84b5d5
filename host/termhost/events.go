// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/termhost/events.go
// Summary: Translates tcell events into bar events.

package termhost

import (
	"github.com/framegrace/texelbar/bar"
	"github.com/framegrace/texelbar/host"
	"github.com/gdamore/tcell/v2"
)

// Translate maps a tcell event onto a bar event. Redraw interrupts and
// events the bar does not care about report false.
func (h *Host) Translate(ev tcell.Event) (bar.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.markDirty()
		return bar.Event{Type: bar.EventScreensChanged}, true

	case *tcell.EventKey:
		return bar.Event{Type: bar.EventHotkey, Payload: host.ComboFromEvent(ev)}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		h.mu.Lock()
		pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
		h.lastButtons = buttons
		h.mu.Unlock()
		if pressed {
			return bar.Event{Type: bar.EventClick, Payload: bar.Point{X: x, Y: y}}, true
		}
		if buttons == tcell.ButtonNone {
			return bar.Event{Type: bar.EventHover, Payload: bar.Point{X: x, Y: y}}, true
		}

	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(windowsChanged); ok {
			return bar.Event{Type: bar.EventWindowsChanged}, true
		}
	}
	return bar.Event{}, false
}
