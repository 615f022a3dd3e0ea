// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/meshview/math32"
	"cogentcore.org/meshview/mesh"
	"cogentcore.org/meshview/scene"
	"cogentcore.org/meshview/sceneview"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(size float32) *mesh.Polyhedron {
	p := mesh.New([]math32.Vector3{{}, {X: size}, {Y: size}}, [][]int{{0, 1, 2}})
	p.ComputeNormals()
	return p
}

func newModel(names ...string) (*Model, *time.Time) {
	sc := scene.New()
	for _, name := range names {
		sc.Add(triangle(1), name)
	}
	m := New(sceneview.NewTable(sc, "en"), &PaletteDialog{})
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	return m, &now
}

func press(p image.Point) tea.MouseMsg {
	return tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// center returns the middle of the given cell, where its hit square is.
func center(row int, col sceneview.Columns) image.Point {
	cb := CellBounds(row, col)
	return sceneview.HitSquare(cb).Min
}

func TestLayout(t *testing.T) {
	assert.Equal(t, image.Rect(0, 1, 24, 2), CellBounds(0, sceneview.NameColumn))
	assert.Equal(t, image.Rect(44, 3, 55, 4), CellBounds(2, sceneview.ActivatedColumn))
	assert.Equal(t, image.Pt(49, 3), center(2, sceneview.ActivatedColumn))

	row, col, ok := CellAt(image.Pt(36, 2), 3)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, sceneview.ModeColumn, col)

	_, _, ok = CellAt(image.Pt(24, 1), 3)
	assert.False(t, ok, "gap between columns")
	_, _, ok = CellAt(image.Pt(1, 0), 3)
	assert.False(t, ok, "header")
	_, _, ok = CellAt(image.Pt(1, 4), 3)
	assert.False(t, ok, "below rows")
}

func TestMouseActivated(t *testing.T) {
	m, _ := newModel("a", "b")
	sc := m.Table.Scene
	m.Update(press(center(1, sceneview.ActivatedColumn)))
	assert.False(t, sc.Activated(1))
	assert.Equal(t, 1, sc.Selected())

	m.Update(press(CellBounds(0, sceneview.ActivatedColumn).Min))
	assert.True(t, sc.Activated(0))
	assert.Equal(t, 0, sc.Selected())
}

func TestMouseDoubleClick(t *testing.T) {
	m, now := newModel("a", "b")
	sc := m.Table.Scene
	p := center(1, sceneview.ModeColumn)
	m.Update(press(p))
	assert.Equal(t, scene.Wireframe, sc.Mode(1))
	*now = now.Add(100 * time.Millisecond)
	m.Update(press(p))
	assert.Equal(t, scene.Wireframe, sc.Mode(1), "double click is absorbed")
	*now = now.Add(time.Second)
	m.Update(press(p))
	assert.Equal(t, scene.Fill, sc.Mode(1))
}

func TestMouseColor(t *testing.T) {
	m, _ := newModel("a")
	m.Update(press(CellBounds(0, sceneview.ColorColumn).Min))
	assert.Equal(t, Palette[0], m.Table.Scene.Color(0))
	m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, Palette[0], m.Table.Scene.Color(0))
}

func TestKeys(t *testing.T) {
	m, _ := newModel("a", "b")
	sc := m.Table.Scene
	m.Update(key("down"))
	assert.Equal(t, 0, sc.Selected())
	m.Update(key("down"))
	m.Update(key("down"))
	assert.Equal(t, 1, sc.Selected())
	m.Update(key("up"))
	assert.Equal(t, 0, sc.Selected())

	m.Update(key(" "))
	assert.False(t, sc.Activated(0))
	m.Update(key("m"))
	assert.Equal(t, scene.Wireframe, sc.Mode(0))
	m.Update(key("c"))
	assert.Equal(t, Palette[0], sc.Color(0))

	m.Update(key("d"))
	assert.Equal(t, 3, sc.Len())
	assert.Equal(t, "a (copy)", sc.Name(2))
	assert.Equal(t, scene.Fill, sc.Mode(2))
	assert.Equal(t, 2, sc.Selected())

	m.Update(key("x"))
	assert.Equal(t, 2, sc.Len())
	assert.Equal(t, 1, sc.Selected())
	assert.Contains(t, m.View(), `erased "a (copy)"`)

	m.Update(key("r"))
	assert.True(t, m.statusErr)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m, _ := newModel("cube", "tetra")
	require.NoError(t, m.Table.Scene.SetMode(1, scene.Wireframe))
	v := m.View()
	assert.Contains(t, v, "Name")
	assert.Contains(t, v, "Activated")
	assert.Contains(t, v, "cube")
	assert.Contains(t, v, "wire")
	assert.Contains(t, v, "2 entries")
}

func TestFileChanged(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tri.off")
	require.NoError(t, os.WriteFile(fn, []byte("OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"), 0666))
	m, _ := newModel()
	_, err := m.Table.Scene.Open(fn)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("OFF\n3 1 0\n0 0 0\n5 0 0\n0 5 0\n3 0 1 2\n"), 0666))
	_, cmd := m.Update(fileChangedMsg(fn))
	assert.Nil(t, cmd)
	assert.Equal(t, math32.B3(0, 0, 0, 5, 5, 0), m.Table.Scene.BBox())
	assert.Contains(t, m.status, "reloaded")
}
