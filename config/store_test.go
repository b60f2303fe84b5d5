// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
	rootOverride = ""
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetInt("panel", "height", 0) != 1 {
		t.Fatalf("expected default panel height")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetSections("widgets", "right"); len(got) != 2 {
		t.Fatalf("expected default right widgets on disk, got %d", len(got))
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		"panel": map[string]interface{}{"height": 3},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetInt("panel", "height", 0); got != 3 {
		t.Fatalf("expected height 3, got %d", got)
	}
	if got := disk.GetString("panel", "color", ""); got != "#dcdcdc" {
		t.Fatalf("expected defaults to fill missing keys, got %q", got)
	}
}

func TestExistingConfigIsRead(t *testing.T) {
	dir := t.TempDir()
	resetStore()
	SetRoot(dir)

	raw := `{"panel":{"height":2,"color":"red"},"widgets":{"left":[{"kind":"text","text":"hi"},"junk"]}}`
	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Err(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	cfg := System()
	if cfg.GetInt("panel", "height", 0) != 2 {
		t.Fatalf("height not read from disk")
	}
	if cfg.GetColor("panel", "color", tcell.ColorBlack) != tcell.ColorRed {
		t.Fatalf("color not parsed")
	}
	left := cfg.GetSections("widgets", "left")
	if len(left) != 1 || left[0].String("text", "") != "hi" {
		t.Fatalf("unexpected left widgets %v", left)
	}
	if right := cfg.GetSections("widgets", "right"); len(right) != 2 {
		t.Fatalf("missing keys in an existing section should get defaults")
	}
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	resetStore()
	SetRoot(dir)

	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Err(); err == nil {
		t.Fatalf("expected a load error")
	}
	if System().GetString("hotkeys", "maximize", "") != "ctrl+up" {
		t.Fatalf("defaults not applied after a read error")
	}
}

func TestSectionHelpers(t *testing.T) {
	s := Section{"n": float64(4), "s": "x", "b": "true", "c": "#ff0000", "bad": "nocolor"}
	if s.Int("n", 0) != 4 || s.String("s", "") != "x" || !s.Bool("b", false) {
		t.Fatalf("typed section getters failed")
	}
	if s.Color("c", tcell.ColorBlack) != tcell.NewHexColor(0xff0000) {
		t.Fatalf("hex color not parsed")
	}
	if s.Color("bad", tcell.ColorBlue) != tcell.ColorBlue {
		t.Fatalf("unknown color should fall back")
	}
	if s.Has("missing") || !s.Has("n") {
		t.Fatalf("Has misreports keys")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Config{
		"widgets": map[string]interface{}{
			"left": []interface{}{map[string]interface{}{"kind": "clock"}},
		},
	}
	c := Clone(orig)
	c.GetSections("widgets", "left")[0]["kind"] = "text"
	c.Section("widgets")["right"] = []interface{}{}

	if got := orig.GetSections("widgets", "left")[0].String("kind", ""); got != "clock" {
		t.Fatalf("clone shares nested widgets, original now %q", got)
	}
	if orig.Section("widgets").Has("right") {
		t.Fatalf("clone shares sections with the original")
	}
}

func TestNumbersKeepTheirExactValue(t *testing.T) {
	dir := t.TempDir()
	resetStore()
	SetRoot(dir)

	raw := `{"widgets":{"right":[{"kind":"linegraph","interval_ms":9007199254740993}]}}`
	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	right := System().GetSections("widgets", "right")
	if len(right) != 1 {
		t.Fatalf("expected one right widget, got %d", len(right))
	}
	if _, ok := right[0]["interval_ms"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", right[0]["interval_ms"])
	}
	if got := right[0].Int("interval_ms", 0); got != 9007199254740993 {
		t.Fatalf("integer rounded to %d", got)
	}
}

func TestSaveSystemReplacesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	resetStore()
	SetRoot(dir)

	SetSystem(Config{"screens": map[string]interface{}{"count": 2}})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}
	path, err := Path()
	if err != nil || path != filepath.Join(dir, systemConfigName) {
		t.Fatalf("Path() = %q, %v", path, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != systemConfigName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only %s, found %v", systemConfigName, names)
	}
	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := System().GetInt("screens", "count", 0); got != 2 {
		t.Fatalf("saved screen count not reloaded, got %d", got)
	}
}
