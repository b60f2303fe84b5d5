// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Registry of widget kinds that turns configuration into builders.
// Usage: Widget packages register their kind at init time; cmd/texelbar builds
// the configured widgets through Registry.Builders.

package registry

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/framegrace/texelbar/host"
	"github.com/framegrace/texelbar/panel"
)

// Env carries the host services widget factories may capture.
type Env struct {
	Launcher host.Launcher
	Windows  host.WindowManager
	Logger   *log.Logger
}

// Factory creates a builder from a declaration. Factories never fail:
// configuration problems are reported through the builder's BuildErrors.
type Factory func(decl Decl, env Env) panel.Builder

// KindEntry is a registered widget kind.
type KindEntry struct {
	Manifest *Manifest
	Factory  Factory
}

// Registry manages the collection of available widget kinds.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*KindEntry
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		kinds: make(map[string]*KindEntry),
	}
}

// Register adds a widget kind. A later registration replaces an earlier one.
func (r *Registry) Register(manifest *Manifest, factory Factory) error {
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("register widget kind: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("register widget kind %q: nil factory", manifest.Kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[manifest.Kind] = &KindEntry{Manifest: manifest, Factory: factory}
	log.Printf("Registry: Registered widget kind '%s'", manifest.Kind)
	return nil
}

// Get returns the entry for kind.
func (r *Registry) Get(kind string) (*KindEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.kinds[kind]
	return entry, ok
}

// Kinds returns every registered manifest sorted by kind.
func (r *Registry) Kinds() []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Manifest, 0, len(r.kinds))
	for _, entry := range r.kinds {
		out = append(out, entry.Manifest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Builders creates one builder per declaration, in order. Unknown or missing
// kinds yield builders that carry the problem as a build error.
func (r *Registry) Builders(decls []Decl, env Env) []panel.Builder {
	out := make([]panel.Builder, 0, len(decls))
	for i, decl := range decls {
		name := decl.Name
		if name == "" {
			name = fmt.Sprintf("widget #%d", i+1)
		}
		if decl.Kind == "" {
			out = append(out, Failed(name, "missing widget kind"))
			continue
		}
		entry, ok := r.Get(decl.Kind)
		if !ok {
			out = append(out, Failed(name, fmt.Sprintf("unknown widget kind %q", decl.Kind)))
			continue
		}
		decl.Name = name
		out = append(out, entry.Factory(decl, env))
	}
	return out
}

// Failed returns a builder that only reports errors.
func Failed(name string, errs ...string) panel.Builder {
	return &panel.BuildingInfo{
		WidgetName: name,
		Errors:     errs,
		New: func(panel.Params) panel.Handle {
			panic(fmt.Sprintf("registry: widget %q has build errors and must not be built", name))
		},
	}
}
