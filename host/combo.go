// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/combo.go
// Summary: Keyboard combinations used for global hotkeys.

package host

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Combo identifies a key press together with its modifiers.
type Combo struct {
	Mods tcell.ModMask
	Key  tcell.Key
	Rune rune
}

var namedKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
}

var modNames = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
	"cmd":     tcell.ModMeta,
	"command": tcell.ModMeta,
}

// ParseCombo parses strings such as "ctrl+up", "alt+shift+f2" or "ctrl+q".
func ParseCombo(s string) (Combo, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Combo{}, fmt.Errorf("parse combo %q: missing key", s)
	}

	var c Combo
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modNames[strings.TrimSpace(p)]
		if !ok {
			return Combo{}, fmt.Errorf("parse combo %q: unknown modifier %q", s, p)
		}
		c.Mods |= mod
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if k, ok := namedKeys[key]; ok {
		c.Key = k
		return c, nil
	}
	if len(key) >= 2 && key[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(key[1:], "%d", &n); err == nil && n >= 1 && n <= 12 {
			c.Key = tcell.KeyF1 + tcell.Key(n-1)
			return c, nil
		}
	}

	runes := []rune(key)
	if len(runes) != 1 {
		return Combo{}, fmt.Errorf("parse combo %q: unknown key %q", s, key)
	}
	r := runes[0]
	if c.Mods&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		// Terminals report ctrl+letter as a dedicated control key, which
		// already encodes the modifier.
		c.Key = tcell.KeyCtrlA + tcell.Key(r-'a')
		c.Mods &^= tcell.ModCtrl
		return c, nil
	}
	c.Key = tcell.KeyRune
	c.Rune = r
	return c, nil
}

// ComboFromEvent normalises a tcell key event into a Combo.
func ComboFromEvent(ev *tcell.EventKey) Combo {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return Combo{Mods: ev.Modifiers() &^ tcell.ModCtrl, Key: tcell.KeyCtrlA + tcell.Key(r-'a')}
		}
		return Combo{Mods: ev.Modifiers(), Key: tcell.KeyRune, Rune: r}
	}
	mods := ev.Modifiers()
	if isControlKey(ev.Key()) {
		mods &^= tcell.ModCtrl
	}
	return Combo{Mods: mods, Key: ev.Key()}
}

func isControlKey(k tcell.Key) bool {
	return k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ
}

func (c Combo) String() string {
	var parts []string
	name := keyName(c.Key)
	if c.Key != tcell.KeyRune && name == "" && isControlKey(c.Key) {
		parts = append(parts, "ctrl")
		name = string(rune('a' + int(c.Key-tcell.KeyCtrlA)))
	}
	for _, m := range []struct {
		mask tcell.ModMask
		name string
	}{{tcell.ModCtrl, "ctrl"}, {tcell.ModAlt, "alt"}, {tcell.ModShift, "shift"}, {tcell.ModMeta, "meta"}} {
		if c.Mods&m.mask != 0 {
			parts = append(parts, m.name)
		}
	}
	switch {
	case c.Key == tcell.KeyRune:
		parts = append(parts, string(c.Rune))
	case name != "":
		parts = append(parts, name)
	case c.Key >= tcell.KeyF1 && c.Key <= tcell.KeyF12:
		parts = append(parts, fmt.Sprintf("f%d", int(c.Key-tcell.KeyF1)+1))
	default:
		parts = append(parts, fmt.Sprintf("key%d", c.Key))
	}
	return strings.Join(parts, "+")
}

func keyName(k tcell.Key) string {
	for n, key := range namedKeys {
		if key == k {
			return n
		}
	}
	return ""
}
