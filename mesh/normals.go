// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/meshview/math32"

// ComputeNormals computes the face and vertex normals.
// The normal of a polygonal face is computed with Newell's method,
// which is robust for non-planar and non-convex faces.
// Vertex normals are the normalized sum of the normals of their faces.
func (p *Polyhedron) ComputeNormals() {
	p.FaceNormals = make([]math32.Vector3, len(p.Faces))
	p.VertexNormals = make([]math32.Vector3, len(p.Vertices))
	for fi, f := range p.Faces {
		var n math32.Vector3
		for i, vi := range f {
			a := p.Vertices[vi]
			b := p.Vertices[f[(i+1)%len(f)]]
			n.X += (a.Y - b.Y) * (a.Z + b.Z)
			n.Y += (a.Z - b.Z) * (a.X + b.X)
			n.Z += (a.X - b.X) * (a.Y + b.Y)
		}
		n = n.Normal()
		p.FaceNormals[fi] = n
		for _, vi := range f {
			p.VertexNormals[vi].SetAdd(n)
		}
	}
	for i, n := range p.VertexNormals {
		p.VertexNormals[i] = n.Normal()
	}
}

// Triangles returns the faces split into triangles as a fan
// around the first vertex of each face, as triples of vertex indexes.
func (p *Polyhedron) Triangles() [][3]int {
	var tris [][3]int
	for _, f := range p.Faces {
		for i := 1; i+1 < len(f); i++ {
			tris = append(tris, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// Edges returns the unique undirected edges of all faces
// as pairs of vertex indexes with the lower index first,
// in the order in which they are first seen.
func (p *Polyhedron) Edges() [][2]int {
	seen := map[[2]int]bool{}
	var edges [][2]int
	for _, f := range p.Faces {
		for i, a := range f {
			b := f[(i+1)%len(f)]
			e := [2]int{min(a, b), max(a, b)}
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
		}
	}
	return edges
}
