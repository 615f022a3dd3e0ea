// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene manages the ordered set of meshes shown by a mesh
// viewer, along with the display state of each of them.
//
// A [Scene] is owned by one goroutine (the one running the host's
// event loop) and is not safe for concurrent use. Every change is
// reported synchronously to the functions registered with
// [Scene.OnChange].
package scene

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/mesh"
)

var (
	// ErrIO is returned when a mesh source cannot be read.
	ErrIO = errors.New("scene: cannot read mesh source")

	// ErrParse is returned when mesh data is malformed.
	// It is the same as [mesh.ErrParse].
	ErrParse = mesh.ErrParse

	// ErrIndex is returned for an entry index that is out of range.
	ErrIndex = errors.New("scene: entry index out of range")
)

// Scene is an ordered list of mesh entries. The order of the entries
// is their row order; adding or erasing an entry renumbers the entries
// after it. At most one entry is selected; -1 means none.
type Scene struct {

	// Parser is used by [Scene.Load] and [Scene.Open] to read meshes.
	// If it is nil, [mesh.DefaultParser] is used.
	Parser mesh.Parser

	// Highlights are the factors used by [Scene.Draw] to derive
	// display colors from entry colors.
	Highlights colors.Highlights

	entries   []*Entry
	selected  int
	listeners []func(ch Change)
}

// New returns a new empty scene.
func New() *Scene {
	return &Scene{Highlights: colors.DefaultHighlights, selected: -1}
}

// Len returns the number of entries.
func (sc *Scene) Len() int {
	return len(sc.entries)
}

func (sc *Scene) valid(i int) bool {
	return i >= 0 && i < len(sc.entries)
}

// checkIndex returns a wrapped [ErrIndex] if i is not a valid entry
// index for the given operation. In debug builds it panics instead.
func (sc *Scene) checkIndex(op string, i int) error {
	if sc.valid(i) {
		return nil
	}
	return errors.Check(fmt.Errorf("scene.%s: %w: %d not in [0, %d)", op, ErrIndex, i, len(sc.entries)))
}

// Add appends a new entry for the given mesh, which the scene takes
// ownership of, and returns its index. By default the entry has
// [DefaultColor], is activated and is drawn in [Fill] mode.
// The selection is reset to none. A mesh already owned by another
// entry is copied, so that no two entries share a mesh; if that copy
// fails, the error is logged, no entry is added and -1 is returned.
func (sc *Scene) Add(p *mesh.Polyhedron, name string, opts ...AddOptions) int {
	p, err := sc.own(p)
	if errors.Log(err) != nil {
		return -1
	}
	e := &Entry{Mesh: p, Name: name, Color: DefaultColor, Activated: true, Mode: Fill}
	for _, opt := range opts {
		opt(e)
	}
	sc.entries = append(sc.entries, e)
	sc.selected = -1
	sc.structureChanged()
	return len(sc.entries) - 1
}

// cloneMesh makes the copies of shared meshes.
var cloneMesh = (*mesh.Polyhedron).Clone

// own returns p, or a copy of it if it is already owned by an entry.
func (sc *Scene) own(p *mesh.Polyhedron) (*mesh.Polyhedron, error) {
	if p == nil {
		return nil, nil
	}
	for _, e := range sc.entries {
		if e.Mesh != p {
			continue
		}
		cp, err := cloneMesh(p)
		if err != nil {
			return nil, fmt.Errorf("scene: copying shared mesh: %w", err)
		}
		cp.ComputeNormals()
		return cp, nil
	}
	return p, nil
}

// Erase removes entry i and releases its mesh. It returns the index
// that should become the current one: i-1 if that is valid, else 0
// if any entries remain, else -1. The selection is reset to none.
func (sc *Scene) Erase(i int) (int, error) {
	if err := sc.checkIndex("Erase", i); err != nil {
		return -1, err
	}
	e := sc.entries[i]
	if e.Mesh != nil {
		e.Mesh.Release()
		e.Mesh = nil
	}
	sc.entries = slices.Delete(sc.entries, i, i+1)
	sc.selected = -1
	sc.structureChanged()

	switch {
	case i-1 >= 0:
		return i - 1, nil
	case len(sc.entries) > 0:
		return 0, nil
	}
	return -1, nil
}

// Duplicate appends a deep copy of entry i named "<name> (copy)" with
// the same color and activation, and returns its index. The copy is
// always in [Fill] mode, whatever the mode of entry i.
func (sc *Scene) Duplicate(i int) (int, error) {
	if err := sc.checkIndex("Duplicate", i); err != nil {
		return -1, err
	}
	e := sc.entries[i]
	var cp *mesh.Polyhedron
	if e.Mesh != nil {
		var err error
		cp, err = cloneMesh(e.Mesh)
		if err != nil {
			return -1, fmt.Errorf("scene.Duplicate: copying %q: %w", e.Name, err)
		}
		cp.ComputeNormals()
	}
	return sc.Add(cp, e.Name+" (copy)", WithColor(e.Color), WithActivated(e.Activated)), nil
}

// Close erases all entries, releasing their meshes.
func (sc *Scene) Close() {
	if len(sc.entries) == 0 {
		return
	}
	for _, e := range sc.entries {
		if e.Mesh != nil {
			e.Mesh.Release()
			e.Mesh = nil
		}
	}
	sc.entries = nil
	sc.selected = -1
	sc.structureChanged()
}

// Entry returns a copy of entry i and whether i is valid.
// The copy refers to the mesh owned by the scene, which must
// not be retained after the entry is erased.
func (sc *Scene) Entry(i int) (Entry, bool) {
	if !sc.valid(i) {
		return Entry{}, false
	}
	return *sc.entries[i], true
}

// Mesh returns the mesh of entry i, or nil if i is not valid.
func (sc *Scene) Mesh(i int) *mesh.Polyhedron {
	if !sc.valid(i) {
		return nil
	}
	return sc.entries[i].Mesh
}

// Name returns the name of entry i, or "" if i is not valid.
func (sc *Scene) Name(i int) string {
	if !sc.valid(i) {
		return ""
	}
	return sc.entries[i].Name
}

// Color returns the color of entry i, or the zero color if i is not valid.
func (sc *Scene) Color(i int) color.RGBA {
	if !sc.valid(i) {
		return color.RGBA{}
	}
	return sc.entries[i].Color
}

// Activated returns whether entry i is activated, or false if i is not valid.
func (sc *Scene) Activated(i int) bool {
	if !sc.valid(i) {
		return false
	}
	return sc.entries[i].Activated
}

// Mode returns the render mode of entry i, or [Fill] if i is not valid.
func (sc *Scene) Mode(i int) RenderModes {
	if !sc.valid(i) {
		return Fill
	}
	return sc.entries[i].Mode
}

// Source returns the file entry i was opened from, or "".
func (sc *Scene) Source(i int) string {
	if !sc.valid(i) {
		return ""
	}
	return sc.entries[i].Source
}

// SetName sets the name of entry i.
func (sc *Scene) SetName(i int, name string) error {
	if err := sc.checkIndex("SetName", i); err != nil {
		return err
	}
	sc.entries[i].Name = name
	sc.send(RowChanged, i)
	return nil
}

// SetColor sets the color of entry i.
func (sc *Scene) SetColor(i int, c color.RGBA) error {
	if err := sc.checkIndex("SetColor", i); err != nil {
		return err
	}
	sc.entries[i].Color = c
	sc.send(RowChanged, i)
	return nil
}

// SetMode sets the render mode of entry i.
func (sc *Scene) SetMode(i int, mode RenderModes) error {
	if err := sc.checkIndex("SetMode", i); err != nil {
		return err
	}
	if !mode.IsValid() {
		return fmt.Errorf("scene.SetMode: invalid render mode %d", mode)
	}
	sc.entries[i].Mode = mode
	sc.send(RowChanged, i)
	return nil
}

// SetActivated sets whether entry i is activated.
func (sc *Scene) SetActivated(i int, activated bool) error {
	if err := sc.checkIndex("SetActivated", i); err != nil {
		return err
	}
	sc.entries[i].Activated = activated
	sc.send(RowChanged, i)
	return nil
}

// SetMesh replaces the mesh of entry i with the given one, which the
// scene takes ownership of, releasing the previous mesh.
func (sc *Scene) SetMesh(i int, p *mesh.Polyhedron) error {
	if err := sc.checkIndex("SetMesh", i); err != nil {
		return err
	}
	e := sc.entries[i]
	if e.Mesh == p {
		sc.send(RowChanged, i)
		return nil
	}
	p, err := sc.own(p)
	if err != nil {
		return fmt.Errorf("scene.SetMesh: %w", err)
	}
	if e.Mesh != nil {
		e.Mesh.Release()
	}
	e.Mesh = p
	sc.send(RowChanged, i)
	sc.send(BBoxChanged, -1)
	sc.send(Updated, -1)
	return nil
}

// Selected returns the index of the selected entry, or -1 if none.
func (sc *Scene) Selected() int {
	return sc.selected
}

// SetSelected selects entry i, or no entry if i is -1.
func (sc *Scene) SetSelected(i int) error {
	if i != -1 {
		if err := sc.checkIndex("SetSelected", i); err != nil {
			return err
		}
	}
	if sc.selected == i {
		return nil
	}
	sc.selected = i
	sc.send(Updated, -1)
	return nil
}
