// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that the host view
// delivers to cell editors.
package events

// Types determines the type of an input event.
// The type includes both the source of the event and its "action"
// (e.g., MouseDown and MouseUp are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the mouse is moving.
	MouseMove

	// Click represents a MouseDown followed by MouseUp in sequence on the
	// same element, with the same button.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	// The host sends it in place of the second MouseDown.
	DoubleClick

	typesN
)

func (t Types) String() string {
	switch t {
	case UnknownType:
		return "UnknownType"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case Click:
		return "Click"
	case DoubleClick:
		return "DoubleClick"
	}
	return "Types(unknown)"
}

// IsValid returns whether the type is one of the defined types.
func (t Types) IsValid() bool {
	return t >= UnknownType && t < typesN
}
