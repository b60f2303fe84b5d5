// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: panel/layout.go
// Summary: Packs left- and right-anchored widgets into absolute offsets.

package panel

// Slot is the horizontal placement of one builder.
type Slot struct {
	Builder Builder
	X       int
	Width   int
}

// Arrangement is the result of packing both regions of a panel.
type Arrangement struct {
	Left  []Slot
	Right []Slot
	// LeftEdge is the first free column after the left region.
	LeftEdge int
	// RightEdge is the leftmost column used by the right region.
	RightEdge int
	// Overflow is how far the regions overlap; zero when they fit.
	Overflow int
}

// Gap returns the free width between both regions.
func (a Arrangement) Gap() int {
	if a.Overflow > 0 {
		return 0
	}
	return a.RightEdge - a.LeftEdge
}

// Arrange places left builders from x rightwards and right builders from
// x+width leftwards, both in registration order. Measure is called exactly
// once per builder. Overlap is reported, not corrected.
func Arrange(x, width, height int, left, right []Builder) Arrangement {
	arr := Arrangement{
		Left:  make([]Slot, 0, len(left)),
		Right: make([]Slot, 0, len(right)),
	}

	offset := x
	for _, b := range left {
		w := b.Measure(height)
		arr.Left = append(arr.Left, Slot{Builder: b, X: offset, Width: w})
		offset += w
	}
	arr.LeftEdge = offset

	offset = x + width
	for _, b := range right {
		w := b.Measure(height)
		offset -= w
		arr.Right = append(arr.Right, Slot{Builder: b, X: offset, Width: w})
	}
	arr.RightEdge = offset

	if arr.LeftEdge > arr.RightEdge {
		arr.Overflow = arr.LeftEdge - arr.RightEdge
	}
	return arr
}
