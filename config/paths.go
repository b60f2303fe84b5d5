// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelbar configuration.

package config

import (
	"os"
	"path/filepath"
)

var rootOverride string

// SetRoot points the store at dir instead of the user config directory.
// It must be called before the first access to the store.
func SetRoot(dir string) {
	mu.Lock()
	defer mu.Unlock()
	rootOverride = dir
}

func configRoot() (string, error) {
	if rootOverride != "" {
		return rootOverride, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelbar"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// Root returns the configuration directory in use.
func Root() (string, error) {
	return configRoot()
}
