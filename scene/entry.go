// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/meshview/mesh"
)

// RenderModes are the ways in which an entry can be drawn.
type RenderModes int32

const (
	// Fill draws shaded faces with the edges superimposed.
	Fill RenderModes = iota

	// Wireframe draws only the edges.
	Wireframe

	renderModesN
)

func (m RenderModes) String() string {
	switch m {
	case Fill:
		return "Fill"
	case Wireframe:
		return "Wireframe"
	}
	return "RenderModes(unknown)"
}

// IsValid returns whether the mode is one of the defined modes.
func (m RenderModes) IsValid() bool {
	return m >= Fill && m < renderModesN
}

// Toggle returns the other render mode.
func (m RenderModes) Toggle() RenderModes {
	if m == Wireframe {
		return Fill
	}
	return Wireframe
}

// DefaultColor is the color given to entries that are
// added without an explicit color.
var DefaultColor = color.RGBA{100, 100, 255, 255}

// Entry is one mesh in a [Scene] along with its display state.
type Entry struct {

	// Mesh is the geometry, which the scene owns exclusively.
	Mesh *mesh.Polyhedron

	// Name is the display label; it does not need to be unique.
	Name string

	// Color is the base display color.
	Color color.RGBA

	// Activated is whether the entry is drawn.
	Activated bool

	// Mode is how the entry is drawn.
	Mode RenderModes

	// Source is the file the entry was opened from,
	// or "" if it was made by the program.
	Source string
}

// AddOptions are optional settings for [Scene.Add].
type AddOptions func(e *Entry)

// WithColor sets the color of the new entry.
func WithColor(c color.RGBA) AddOptions {
	return func(e *Entry) { e.Color = c }
}

// WithActivated sets whether the new entry is activated.
func WithActivated(activated bool) AddOptions {
	return func(e *Entry) { e.Activated = activated }
}

// WithMode sets the render mode of the new entry.
func WithMode(mode RenderModes) AddOptions {
	return func(e *Entry) { e.Mode = mode }
}

// WithSource records the file the new entry came from.
func WithSource(path string) AddOptions {
	return func(e *Entry) { e.Source = path }
}
