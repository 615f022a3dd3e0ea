// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"io"
	"strconv"
	"strings"

	"cogentcore.org/meshview/math32"
)

// ReadOBJ reads a polyhedron from the vertex and face statements of
// a Wavefront OBJ file. All objects and groups are merged into one
// polyhedron; texture coordinates, normals, materials and other
// statements are ignored. Negative (relative) face indexes are supported.
// The normals are not computed.
func ReadOBJ(r io.Reader) (*Polyhedron, error) {
	lr := newLineReader(r, OBJ)
	p := &Polyhedron{}
	for {
		fields, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, lr.errorf("vertex needs 3 coordinates, got %d", len(fields)-1)
			}
			xyz, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, lr.errorf("invalid vertex: %w", err)
			}
			p.Vertices = append(p.Vertices, math32.Vec3(xyz[0], xyz[1], xyz[2]))
		case "f":
			if len(fields) < 4 {
				return nil, lr.errorf("face needs at least 3 vertices, got %d", len(fields)-1)
			}
			face := make([]int, len(fields)-1)
			for i, ref := range fields[1:] {
				vi, err := objIndex(ref, len(p.Vertices))
				if err != nil {
					return nil, lr.errorf("invalid face vertex %q", ref)
				}
				face[i] = vi
			}
			p.Faces = append(p.Faces, face)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, &ParseError{Format: OBJ, Err: err}
	}
	return p, nil
}

// objIndex returns the 0-based vertex index of the given face vertex
// reference (v, v/vt, v//vn or v/vt/vn), given the number of vertices
// read so far.
func objIndex(ref string, nv int) (int, error) {
	if si := strings.IndexByte(ref, '/'); si >= 0 {
		ref = ref[:si]
	}
	vi, err := strconv.Atoi(ref)
	if err != nil {
		return 0, err
	}
	switch {
	case vi > 0:
		return vi - 1, nil
	case vi < 0:
		return nv + vi, nil
	}
	return 0, strconv.ErrRange
}
