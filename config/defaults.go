// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("panel", Section{
		"height":      1,
		"color":       "#dcdcdc",
		"hover_color": "#c0c0c0",
		"text_color":  "#1e1e2e",
	})
	cfg.RegisterDefaults("hotkeys", Section{
		"maximize": "ctrl+up",
		"quit":     "ctrl+q",
	})
	cfg.RegisterDefaults("screens", Section{
		"count": 1,
	})
	cfg.RegisterDefaults("widgets", Section{
		"left":  defaultLeftWidgets(),
		"right": defaultRightWidgets(),
	})
}

func defaultLeftWidgets() []interface{} {
	return []interface{}{
		map[string]interface{}{
			"kind":    "launcher",
			"name":    "shell",
			"label":   "sh",
			"command": "sh",
		},
		map[string]interface{}{
			"kind":    "launcher",
			"name":    "top",
			"label":   "top",
			"command": "top",
		},
	}
}

func defaultRightWidgets() []interface{} {
	return []interface{}{
		map[string]interface{}{
			"kind":   "clock",
			"name":   "clock",
			"format": "15:04:05",
		},
		map[string]interface{}{
			"kind":        "linegraph",
			"name":        "load",
			"source":      "loadavg",
			"samples":     12,
			"interval_ms": 2000,
		},
	}
}
