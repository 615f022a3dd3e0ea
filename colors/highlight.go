// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Roles are the parts of a mesh that are drawn with their own color.
type Roles int32

const (
	// RoleFill is the shaded triangles of a mesh.
	RoleFill Roles = iota

	// RoleEdge is the wireframe edges drawn on top of a mesh.
	RoleEdge
)

func (r Roles) String() string {
	switch r {
	case RoleFill:
		return "Fill"
	case RoleEdge:
		return "Edge"
	}
	return "Roles(unknown)"
}

// Highlights holds the [Lighter] factors used to derive the display
// colors of a scene entry from its base color.
type Highlights struct {

	// FillSelected is the factor for the fill of the selected entry.
	// The fill of other entries uses the base color unchanged.
	FillSelected int `default:"120"`

	// EdgeSelected is the factor for the edges of the selected entry.
	EdgeSelected int `default:"70"`

	// EdgeNormal is the factor for the edges of all other entries.
	EdgeNormal int `default:"50"`
}

// DefaultHighlights are the standard highlight factors.
var DefaultHighlights = Highlights{FillSelected: 120, EdgeSelected: 70, EdgeNormal: 50}

// Color returns the display color for the given base color,
// selection state and role.
func (h Highlights) Color(base color.RGBA, selected bool, role Roles) color.RGBA {
	if role == RoleFill {
		if selected {
			return Lighter(base, h.FillSelected)
		}
		return base
	}
	if selected {
		return Lighter(base, h.EdgeSelected)
	}
	return Lighter(base, h.EdgeNormal)
}

// Highlight returns the display color for the given base color,
// selection state and role using [DefaultHighlights].
func Highlight(base color.RGBA, selected bool, role Roles) color.RGBA {
	return DefaultHighlights.Color(base, selected, role)
}
