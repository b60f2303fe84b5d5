// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name
// addresses the config itself.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	return asSection(c[sectionName])
}

func asSection(raw interface{}) Section {
	switch v := raw.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills in missing keys of a section, creating it if needed.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(sectionName, key string) (interface{}, bool) {
	section := c.Section(sectionName)
	if section == nil {
		return nil, false
	}
	val, ok := section[key]
	return val, ok
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if val, ok := c.lookup(sectionName, key); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetInt retrieves an integer value. JSON numbers and numeric strings are
// accepted.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	if val, ok := c.lookup(sectionName, key); ok {
		if n, ok := asInt(val); ok {
			return n
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value. Numbers count as true when non-zero.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	if val, ok := c.lookup(sectionName, key); ok {
		if b, ok := asBool(val); ok {
			return b
		}
	}
	return defaultValue
}

func asInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asBool(val interface{}) (bool, bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	default:
		if n, ok := asInt(val); ok {
			return n != 0, true
		}
	}
	return false, false
}

// GetSections retrieves a list of objects, skipping entries that are not
// objects.
func (c Config) GetSections(sectionName, key string) []Section {
	section := c.Section(sectionName)
	if section == nil {
		return nil
	}
	return section.Sections(key)
}

// Sections returns the objects stored under key.
func (s Section) Sections(key string) []Section {
	var out []Section
	switch v := s[key].(type) {
	case []interface{}:
		for _, item := range v {
			if sec := asSection(item); sec != nil {
				out = append(out, sec)
			}
		}
	case []map[string]interface{}:
		for _, m := range v {
			out = append(out, Section(m))
		}
	case []Section:
		out = append(out, v...)
	}
	return out
}

// String returns the string stored under key.
func (s Section) String(key, defaultValue string) string {
	return Config(s).GetString("", key, defaultValue)
}

// Int returns the integer stored under key.
func (s Section) Int(key string, defaultValue int) int {
	return Config(s).GetInt("", key, defaultValue)
}

// Bool returns the boolean stored under key.
func (s Section) Bool(key string, defaultValue bool) bool {
	return Config(s).GetBool("", key, defaultValue)
}

// Has reports whether key is set.
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}
