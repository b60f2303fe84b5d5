// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: bar/events.go
// Summary: Inbound host events delivered to the bar through Dispatch.

package bar

// EventType defines the type of an event.
type EventType int

const (
	// EventScreensChanged means screens were attached, detached or resized.
	EventScreensChanged EventType = iota
	// EventWindowsChanged means the host window table changed.
	EventWindowsChanged
	// EventHotkey carries a host.Combo payload.
	EventHotkey
	// EventClick carries a Point payload.
	EventClick
	// EventHover carries a Point payload.
	EventHover
)

func (t EventType) String() string {
	switch t {
	case EventScreensChanged:
		return "screens-changed"
	case EventWindowsChanged:
		return "windows-changed"
	case EventHotkey:
		return "hotkey"
	case EventClick:
		return "click"
	case EventHover:
		return "hover"
	}
	return "unknown"
}

// Event represents a message from the host.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Point is an absolute pointer position.
type Point struct {
	X, Y int
}
