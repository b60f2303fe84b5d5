// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide texelbar.json store with atomic saves.
// Usage: System() returns the loaded config with panel, hotkey, screen and
// widget defaults filled in; SaveSystem writes it back.

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const systemConfigName = "texelbar.json"

// Config maps section names to sections. Widget lists live inside the
// "widgets" section as arrays of objects.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
)

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadSystemLocked()
}

// Err returns the error from the most recent load. A broken file still
// leaves a usable config made of defaults.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the loaded configuration.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// Path returns the location of texelbar.json.
func Path() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	return systemConfigPath()
}

// Reload reads texelbar.json again.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadSystemLocked()
	return loadErr
}

// SetSystem replaces the in-memory config with a copy of cfg plus defaults.
func SetSystem(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	system = Clone(cfg)
	if system == nil {
		system = make(Config)
	}
	applySystemDefaults(system)
}

// SaveSystem writes the in-memory config to disk.
func SaveSystem() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	path, err := systemConfigPath()
	if err != nil {
		return err
	}
	return writeConfig(path, system)
}

// readConfig decodes numbers as json.Number so integers such as
// interval_ms come back exactly.
func readConfig(path string) (cfg Config, exists bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// writeConfig replaces path through a temporary file in the same directory
// so a crash never leaves a truncated texelbar.json.
func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".texelbar-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
