// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the polyhedral surface meshes shown in a scene,
// along with readers for the OFF and OBJ file formats.
package mesh

import (
	"fmt"

	"cogentcore.org/meshview/math32"
	"github.com/jinzhu/copier"
)

// Polyhedron is a polygonal surface mesh. Faces are lists of
// indexes into Vertices, in counter-clockwise order when seen
// from outside.
type Polyhedron struct {

	// Vertices are the vertex positions.
	Vertices []math32.Vector3

	// Faces are the vertex indexes of each face.
	Faces [][]int

	// FaceNormals are the unit normals of each face,
	// computed by [Polyhedron.ComputeNormals].
	FaceNormals []math32.Vector3 `copier:"-"`

	// VertexNormals are the unit normals of each vertex, averaged over
	// the faces around the vertex, computed by [Polyhedron.ComputeNormals].
	VertexNormals []math32.Vector3 `copier:"-"`
}

// New returns a new polyhedron with the given vertices and faces.
// It does not compute the normals.
func New(vertices []math32.Vector3, faces [][]int) *Polyhedron {
	return &Polyhedron{Vertices: vertices, Faces: faces}
}

func (p *Polyhedron) String() string {
	return fmt.Sprintf("Polyhedron{Vertices: %d, Faces: %d}", len(p.Vertices), len(p.Faces))
}

// NumVertices returns the number of vertices.
func (p *Polyhedron) NumVertices() int {
	return len(p.Vertices)
}

// NumFaces returns the number of faces.
func (p *Polyhedron) NumFaces() int {
	return len(p.Faces)
}

// Validate returns an error if a face has fewer than 3 vertices
// or refers to a vertex that does not exist.
func (p *Polyhedron) Validate() error {
	nv := len(p.Vertices)
	for fi, f := range p.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices, need at least 3", fi, len(f))
		}
		for _, vi := range f {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("face %d refers to vertex %d, but there are %d vertices", fi, vi, nv)
			}
		}
	}
	return nil
}

// BBox returns the bounding box of the vertices.
// It is empty (see [math32.Box3.IsEmpty]) if there are no vertices.
func (p *Polyhedron) BBox() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoints(p.Vertices)
	return bb
}

// Clone returns a deep copy of the polyhedron that shares no
// memory with it. The normals are not copied; call
// [Polyhedron.ComputeNormals] on the result as needed.
func (p *Polyhedron) Clone() (*Polyhedron, error) {
	cp := &Polyhedron{}
	err := copier.CopyWithOption(cp, p, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// Release drops the geometry of the polyhedron. It is called by
// the owner when the polyhedron is removed so that any remaining
// reference to it does not keep the geometry alive.
func (p *Polyhedron) Release() {
	p.Vertices = nil
	p.Faces = nil
	p.FaceNormals = nil
	p.VertexNormals = nil
}

// Released returns whether [Polyhedron.Release] has been called
// (or the polyhedron never had any geometry).
func (p *Polyhedron) Released() bool {
	return p.Vertices == nil && p.Faces == nil
}
