// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Deep copy of config trees so callers never share nested widget lists.

package config

// Clone returns a deep copy of cfg. Nested objects come back as Sections.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	return Config(cloneSection(Section(cfg)))
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for key, value := range s {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case Section:
		return cloneSection(t)
	case map[string]interface{}:
		return cloneSection(Section(t))
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []Section:
		out := make([]Section, len(t))
		for i, item := range t {
			out[i] = cloneSection(item)
		}
		return out
	}
	return v
}
