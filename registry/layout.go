// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/layout.go
// Summary: Accumulates left and right widget builders until the bar starts.

package registry

import (
	"errors"
	"sync"

	"github.com/framegrace/texelbar/panel"
)

// ErrFrozen is returned when builders are added after the layout was frozen.
var ErrFrozen = errors.New("registry: layout is frozen")

// Layout collects builders for the left and right regions of every panel.
// It is append-only until Freeze; Reset returns it to the empty, open state.
type Layout struct {
	mu     sync.Mutex
	left   []panel.Builder
	right  []panel.Builder
	frozen bool
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// AddLeft appends builders to the left region in the given order.
func (l *Layout) AddLeft(builders ...panel.Builder) error {
	return l.add(&l.left, builders)
}

// AddRight appends builders to the right region in the given order.
func (l *Layout) AddRight(builders ...panel.Builder) error {
	return l.add(&l.right, builders)
}

func (l *Layout) add(dst *[]panel.Builder, builders []panel.Builder) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frozen {
		return ErrFrozen
	}
	*dst = append(*dst, builders...)
	return nil
}

// Freeze closes the layout and returns copies of both regions.
func (l *Layout) Freeze() (left, right []panel.Builder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frozen = true
	return append([]panel.Builder(nil), l.left...), append([]panel.Builder(nil), l.right...)
}

// Frozen reports whether Freeze has been called since the last Reset.
func (l *Layout) Frozen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frozen
}

// Len returns the number of builders in each region.
func (l *Layout) Len() (left, right int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.left), len(l.right)
}

// Reset clears both regions and reopens the layout.
func (l *Layout) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.left = nil
	l.right = nil
	l.frozen = false
}
