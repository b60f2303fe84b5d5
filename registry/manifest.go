// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Widget kind metadata and configured widget declarations.

package registry

import (
	"fmt"

	"github.com/framegrace/texelbar/config"
)

// Manifest describes a widget kind.
type Manifest struct {
	// Kind is the identifier used in configuration (e.g., "clock").
	Kind string

	// DisplayName is the human-readable name of the kind.
	DisplayName string

	// Description provides a brief explanation of what the widget shows.
	Description string
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.Kind == "" {
		return fmt.Errorf("kind cannot be empty")
	}
	if m.DisplayName == "" {
		return fmt.Errorf("displayName cannot be empty")
	}
	return nil
}

// Decl is one configured widget: its kind, a name used in diagnostics and
// the kind-specific parameters.
type Decl struct {
	Kind   string
	Name   string
	Params config.Section
}

// DeclFromSection reads a widget declaration such as
// {"kind": "clock", "name": "clock", "format": "15:04"}.
func DeclFromSection(s config.Section) Decl {
	kind := s.String("kind", "")
	return Decl{
		Kind:   kind,
		Name:   s.String("name", kind),
		Params: s,
	}
}

// DeclsFromConfig reads the widget list for one side ("left" or "right").
func DeclsFromConfig(cfg config.Config, side string) []Decl {
	sections := cfg.GetSections("widgets", side)
	decls := make([]Decl, 0, len(sections))
	for _, s := range sections {
		decls = append(decls, DeclFromSection(s))
	}
	return decls
}
