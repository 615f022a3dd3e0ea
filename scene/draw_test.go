// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"testing"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	op    string
	mesh  *mesh.Polyhedron
	color color.RGBA
}

type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) DrawTriangles(p *mesh.Polyhedron, c color.RGBA) {
	r.calls = append(r.calls, drawCall{"triangles", p, c})
}

func (r *recordRenderer) DrawEdges(p *mesh.Polyhedron, c color.RGBA) {
	r.calls = append(r.calls, drawCall{"edges", p, c})
}

func TestDraw(t *testing.T) {
	sc := newScene(3)
	require.NoError(t, sc.SetMode(1, Wireframe))
	require.NoError(t, sc.SetActivated(2, false))
	require.NoError(t, sc.SetSelected(1))

	r := &recordRenderer{}
	sc.Draw(r)
	base := DefaultColor
	want := []drawCall{
		{"triangles", sc.Mesh(0), base},
		{"edges", sc.Mesh(0), colors.Lighter(base, 50)},
		{"edges", sc.Mesh(1), colors.Lighter(base, 70)},
	}
	assert.Equal(t, want, r.calls)

	require.NoError(t, sc.SetSelected(0))
	r = &recordRenderer{}
	sc.Draw(r)
	assert.Equal(t, colors.Lighter(base, 120), r.calls[0].color)

	r = &recordRenderer{}
	New().Draw(r)
	assert.Empty(t, r.calls)
}
