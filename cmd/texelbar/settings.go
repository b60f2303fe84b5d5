// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelbar/settings.go
// Summary: Reads panel, hotkey and screen settings from the system config.

package main

import (
	"fmt"

	"github.com/framegrace/texelbar/config"
	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
	"github.com/gdamore/tcell/v2"
)

type settings struct {
	panelHeight int
	colors      panel.Colors
	screens     int
	maximize    host.Combo
	quit        host.Combo
}

func loadSettings(cfg config.Config) (settings, error) {
	s := settings{
		panelHeight: cfg.GetInt("panel", "height", 1),
		colors: panel.Colors{
			Background: cfg.GetColor("panel", "color", tcell.NewRGBColor(0xdc, 0xdc, 0xdc)),
			Hover:      cfg.GetColor("panel", "hover_color", tcell.NewRGBColor(0xc0, 0xc0, 0xc0)),
			Foreground: cfg.GetColor("panel", "text_color", tcell.NewRGBColor(0x1e, 0x1e, 0x2e)),
		},
		screens: cfg.GetInt("screens", "count", 1),
	}
	if s.panelHeight < 1 {
		return s, fmt.Errorf("panel.height must be at least 1, got %d", s.panelHeight)
	}
	if s.screens < 1 {
		s.screens = 1
	}

	var err error
	if s.maximize, err = host.ParseCombo(cfg.GetString("hotkeys", "maximize", "ctrl+up")); err != nil {
		return s, fmt.Errorf("hotkeys.maximize: %w", err)
	}
	if s.quit, err = host.ParseCombo(cfg.GetString("hotkeys", "quit", "ctrl+q")); err != nil {
		return s, fmt.Errorf("hotkeys.quit: %w", err)
	}
	return s, nil
}
