// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/colors.go
// Summary: Color lookups for config values.

package config

import "github.com/gdamore/tcell/v2"

// ParseColor resolves a color name or #rrggbb value. ok is false when the
// value is empty or unknown.
func ParseColor(value string) (tcell.Color, bool) {
	if value == "" {
		return tcell.ColorDefault, false
	}
	c := tcell.GetColor(value)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}

// GetColor retrieves a color from the config, falling back to defaultValue
// when the key is missing or does not name a color.
func (c Config) GetColor(sectionName, key string, defaultValue tcell.Color) tcell.Color {
	if col, ok := ParseColor(c.GetString(sectionName, key, "")); ok {
		return col
	}
	return defaultValue
}

// Color returns the color stored under key.
func (s Section) Color(key string, defaultValue tcell.Color) tcell.Color {
	return Config(s).GetColor("", key, defaultValue)
}
