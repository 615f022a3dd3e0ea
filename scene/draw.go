// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/mesh"
)

// Renderer draws meshes for [Scene.Draw]. It is implemented
// by the graphics layer of the host.
type Renderer interface {

	// DrawTriangles draws the shaded faces of the mesh, lit,
	// in the given color.
	DrawTriangles(p *mesh.Polyhedron, c color.RGBA)

	// DrawEdges draws the edges of the mesh, unlit,
	// in the given color.
	DrawEdges(p *mesh.Polyhedron, c color.RGBA)
}

// Draw draws every activated entry in order with the given renderer.
// Entries in [Fill] mode get their faces drawn first; every entry
// gets its edges drawn. The selected entry is drawn in lighter colors.
func (sc *Scene) Draw(r Renderer) {
	for i, e := range sc.entries {
		if !e.Activated || e.Mesh == nil {
			continue
		}
		selected := i == sc.selected
		if e.Mode == Fill {
			r.DrawTriangles(e.Mesh, sc.Highlights.Color(e.Color, selected, colors.RoleFill))
		}
		r.DrawEdges(e.Mesh, sc.Highlights.Color(e.Color, selected, colors.RoleEdge))
	}
}
