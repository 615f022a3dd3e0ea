// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image/color"
	"testing"

	"cogentcore.org/meshview/math32"
	"cogentcore.org/meshview/mesh"
	"cogentcore.org/meshview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *mesh.Polyhedron {
	p := mesh.New([]math32.Vector3{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, 2}})
	p.ComputeNormals()
	return p
}

func newTable(t *testing.T, names ...string) *Table {
	sc := scene.New()
	for _, name := range names {
		sc.Add(triangle(), name)
	}
	return NewTable(sc, "en")
}

type changeRecorder struct {
	ranges [][2]Index
	resets int
}

func (r *changeRecorder) listen(t *Table) *changeRecorder {
	t.OnDataChanged(func(top, bottom Index) { r.ranges = append(r.ranges, [2]Index{top, bottom}) })
	t.OnReset(func() { r.resets++ })
	return r
}

func TestTableCounts(t *testing.T) {
	tb := newTable(t)
	assert.Equal(t, 0, tb.RowCount())
	assert.Equal(t, 4, tb.ColumnCount())
	tb.Scene.Add(triangle(), "a")
	tb.Scene.Add(triangle(), "b")
	assert.Equal(t, 2, tb.RowCount())
	assert.Equal(t, 4, tb.ColumnCount())
}

func TestTableData(t *testing.T) {
	tb := newTable(t, "a", "b")
	require.NoError(t, tb.Scene.SetMode(1, scene.Wireframe))
	require.NoError(t, tb.Scene.SetActivated(1, false))

	tests := []struct {
		row  int
		col  Columns
		role Roles
		want any
	}{
		{0, NameColumn, DisplayRole, "a"},
		{1, NameColumn, EditRole, "b"},
		{0, ColorColumn, DisplayRole, scene.DefaultColor},
		{0, ColorColumn, EditRole, scene.DefaultColor},
		{0, ColorColumn, DecorationRole, scene.DefaultColor},
		{0, ModeColumn, DisplayRole, "fill"},
		{1, ModeColumn, DisplayRole, "wire"},
		{0, ModeColumn, EditRole, 0},
		{1, ModeColumn, EditRole, 1},
		{1, ModeColumn, AlignmentRole, AlignCenter},
		{0, ActivatedColumn, DisplayRole, true},
		{1, ActivatedColumn, EditRole, false},
	}
	for _, tt := range tests {
		got, ok := tb.Data(tt.row, tt.col, tt.role)
		assert.True(t, ok, "%d %v %d", tt.row, tt.col, tt.role)
		assert.Equal(t, tt.want, got, "%d %v %d", tt.row, tt.col, tt.role)
	}

	for _, c := range []struct {
		row  int
		col  Columns
		role Roles
	}{
		{2, NameColumn, DisplayRole},
		{-1, NameColumn, DisplayRole},
		{0, NumColumns, DisplayRole},
		{0, NameColumn, DecorationRole},
		{0, ActivatedColumn, ToolTipRole},
		{0, NameColumn, AlignmentRole},
	} {
		got, ok := tb.Data(c.row, c.col, c.role)
		assert.False(t, ok)
		assert.Nil(t, got)
	}
}

func TestTableHeaderData(t *testing.T) {
	tb := newTable(t)
	for col, want := range []string{"Name", "Color", "Mode", "Activated"} {
		got, ok := tb.HeaderData(Columns(col), DisplayRole)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	tip, ok := tb.HeaderData(ModeColumn, ToolTipRole)
	assert.True(t, ok)
	assert.Equal(t, "Rendering mode (fill/wireframe)", tip)
	_, ok = tb.HeaderData(NameColumn, ToolTipRole)
	assert.False(t, ok)
	_, ok = tb.HeaderData(NumColumns, DisplayRole)
	assert.False(t, ok)
}

func TestTableTranslations(t *testing.T) {
	sc := scene.New()
	sc.Add(triangle(), "a")
	fr := NewTable(sc, "fr-CA")
	name, _ := fr.HeaderData(NameColumn, DisplayRole)
	assert.Equal(t, "Nom", name)
	mode, _ := fr.Data(0, ModeColumn, DisplayRole)
	assert.Equal(t, "plein", mode)

	de := NewTable(sc, "de")
	col, _ := de.HeaderData(ColorColumn, DisplayRole)
	assert.Equal(t, "Farbe", col)

	unknown := NewTable(sc, "not a language")
	act, _ := unknown.HeaderData(ActivatedColumn, DisplayRole)
	assert.Equal(t, "Activated", act)
}

func TestTableSetData(t *testing.T) {
	tb := newTable(t, "a", "b", "c")
	r := (&changeRecorder{}).listen(tb)

	assert.True(t, tb.SetData(1, NameColumn, "renamed"))
	assert.Equal(t, "renamed", tb.Scene.Name(1))
	assert.Equal(t, [][2]Index{{{1, NameColumn}, {1, ActivatedColumn}}}, r.ranges)

	red := color.RGBA{255, 0, 0, 255}
	assert.True(t, tb.SetData(0, ColorColumn, red))
	assert.Equal(t, red, tb.Scene.Color(0))
	assert.True(t, tb.SetData(0, ColorColumn, "#00ff00"))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, tb.Scene.Color(0))
	assert.True(t, tb.SetData(0, ColorColumn, color.Gray{128}))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, tb.Scene.Color(0))

	assert.True(t, tb.SetData(2, ModeColumn, 1))
	assert.Equal(t, scene.Wireframe, tb.Scene.Mode(2))
	assert.True(t, tb.SetData(2, ModeColumn, scene.Fill))
	assert.Equal(t, scene.Fill, tb.Scene.Mode(2))

	assert.True(t, tb.SetData(2, ActivatedColumn, false))
	assert.False(t, tb.Scene.Activated(2))
	assert.True(t, tb.Scene.Activated(1))
	assert.Len(t, r.ranges, 7)

	before := len(r.ranges)
	assert.False(t, tb.SetData(3, NameColumn, "x"))
	assert.False(t, tb.SetData(-1, ActivatedColumn, true))
	assert.False(t, tb.SetData(0, NumColumns, "x"))
	assert.False(t, tb.SetData(0, NameColumn, 5))
	assert.False(t, tb.SetData(0, ColorColumn, "not a color"))
	assert.False(t, tb.SetData(0, ColorColumn, nil))
	assert.False(t, tb.SetData(0, ColorColumn, (*color.RGBA)(nil)))
	assert.False(t, tb.SetData(0, ColorColumn, color.Color((*color.NRGBA)(nil))))
	assert.False(t, tb.SetData(0, ColorColumn, 3))
	assert.False(t, tb.SetData(0, ModeColumn, 7))
	assert.False(t, tb.SetData(0, ModeColumn, 1<<32|1))
	assert.False(t, tb.SetData(0, ModeColumn, -1))
	assert.False(t, tb.SetData(0, ModeColumn, "wire"))
	assert.False(t, tb.SetData(0, ActivatedColumn, "yes"))
	assert.Equal(t, before, len(r.ranges))
	assert.Equal(t, "a", tb.Scene.Name(0))
	assert.Zero(t, r.resets)
}

func TestTableFlags(t *testing.T) {
	tb := newTable(t, "a")
	assert.Equal(t, ItemSelectable|ItemEnabled|ItemEditable, tb.Flags(0, NameColumn))
	for _, col := range []Columns{ColorColumn, ModeColumn, ActivatedColumn} {
		f := tb.Flags(0, col)
		assert.True(t, f.Has(ItemSelectable|ItemEnabled))
		assert.False(t, f.Has(ItemEditable))
	}
	assert.Zero(t, tb.Flags(1, NameColumn))
}

func TestTableSelectionRange(t *testing.T) {
	tb := newTable(t, "a", "b")
	top, bottom := tb.SelectionRange(1)
	assert.Equal(t, Index{1, NameColumn}, top)
	assert.Equal(t, Index{1, ActivatedColumn}, bottom)
}

func TestTableForwardsChanges(t *testing.T) {
	tb := newTable(t, "a", "b")
	r := (&changeRecorder{}).listen(tb)
	tb.Scene.Add(triangle(), "c")
	assert.Equal(t, 1, r.resets)
	_, err := tb.Scene.Erase(0)
	require.NoError(t, err)
	assert.Equal(t, 2, r.resets)
	assert.Empty(t, r.ranges)

	tb.Scene.ChangedAll()
	assert.Equal(t, [][2]Index{{{0, NameColumn}, {1, ActivatedColumn}}}, r.ranges)
	tb.Scene.Changed(1)
	assert.Equal(t, [2]Index{{1, NameColumn}, {1, ActivatedColumn}}, r.ranges[1])
}
