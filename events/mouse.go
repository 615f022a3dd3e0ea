// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "Buttons(unknown)"
}

// Mouse is a mouse event.
type Mouse struct {

	// Typ is the type of event.
	Typ Types

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// Where is the event location, in the coordinates of the view.
	Where image.Point

	handled bool
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point) *Mouse {
	return &Mouse{Typ: typ, Button: but, Where: where}
}

// NewPress returns a new [MouseDown] event for the left button.
func NewPress(where image.Point) *Mouse {
	return NewMouse(MouseDown, Left, where)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Typ, ev.Button, ev.Where)
}

// Type returns the type of the event.
func (ev *Mouse) Type() Types {
	return ev.Typ
}

// IsPress returns whether the event is a press of the given button.
func (ev *Mouse) IsPress(but Buttons) bool {
	return ev.Typ == MouseDown && ev.Button == but
}

// IsHandled returns whether the event has been handled.
func (ev *Mouse) IsHandled() bool {
	return ev.handled
}

// SetHandled marks the event as handled, so that the host
// does not process it any further.
func (ev *Mouse) SetHandled() {
	ev.handled = true
}
