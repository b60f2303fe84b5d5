// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"errors"
	"testing"

	"github.com/framegrace/texelbar/panel"
)

func named(name string) panel.Builder {
	return &panel.BuildingInfo{WidgetName: name}
}

func TestLayoutPreservesOrderAcrossCalls(t *testing.T) {
	l := NewLayout()
	if err := l.AddLeft(named("a"), named("b")); err != nil {
		t.Fatalf("AddLeft: %v", err)
	}
	if err := l.AddLeft(); err != nil {
		t.Fatalf("empty AddLeft: %v", err)
	}
	if err := l.AddLeft(named("c")); err != nil {
		t.Fatalf("AddLeft: %v", err)
	}
	if err := l.AddRight(named("x")); err != nil {
		t.Fatalf("AddRight: %v", err)
	}

	left, right := l.Freeze()
	var got string
	for _, b := range left {
		got += b.Name()
	}
	if got != "abc" || len(right) != 1 || right[0].Name() != "x" {
		t.Fatalf("unexpected regions left=%q right=%d", got, len(right))
	}
}

func TestLayoutFreezeAndReset(t *testing.T) {
	l := NewLayout()
	_ = l.AddRight(named("x"))
	l.Freeze()

	if err := l.AddLeft(named("late")); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
	if !l.Frozen() {
		t.Fatalf("expected frozen layout")
	}

	l.Reset()
	if left, right := l.Len(); left != 0 || right != 0 || l.Frozen() {
		t.Fatalf("reset should empty and reopen the layout")
	}
	if err := l.AddLeft(named("again")); err != nil {
		t.Fatalf("AddLeft after reset: %v", err)
	}
}

func TestFreezeReturnsCopies(t *testing.T) {
	l := NewLayout()
	_ = l.AddLeft(named("a"))
	left, _ := l.Freeze()
	left[0] = named("mutated")

	again, _ := l.Freeze()
	if again[0].Name() != "a" {
		t.Fatalf("Freeze must not expose internal storage")
	}
}
