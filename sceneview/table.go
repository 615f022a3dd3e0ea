// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneview adapts a [scene.Scene] to the row and column
// contract of a table view, and handles the mouse interaction and
// painting of the cells that are not edited as plain text.
package sceneview

import (
	"image/color"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/scene"
	"golang.org/x/text/message"
)

// Columns are the columns of a [Table], in order.
type Columns int32

const (
	NameColumn Columns = iota
	ColorColumn
	ModeColumn
	ActivatedColumn

	// NumColumns is the number of columns.
	NumColumns
)

// LastColumn is the last column of a row.
const LastColumn = NumColumns - 1

func (c Columns) String() string {
	switch c {
	case NameColumn:
		return "NameColumn"
	case ColorColumn:
		return "ColorColumn"
	case ModeColumn:
		return "ModeColumn"
	case ActivatedColumn:
		return "ActivatedColumn"
	}
	return "Columns(unknown)"
}

// Roles are the kinds of data a view can ask a [Table] for.
type Roles int32

const (
	// DisplayRole is the data shown in the cell.
	DisplayRole Roles = iota

	// EditRole is the data given to an editor of the cell.
	EditRole

	// DecorationRole is the data shown as an icon or swatch.
	DecorationRole

	// AlignmentRole is the [Alignments] of the cell text.
	AlignmentRole

	// ToolTipRole is the tooltip text.
	ToolTipRole
)

// Alignments are the ways text is aligned in a cell.
type Alignments int32

const (
	AlignStart Alignments = iota
	AlignCenter
	AlignEnd
)

// ItemFlags are bit flags describing what a view can do with a cell.
type ItemFlags int32

const (
	ItemSelectable ItemFlags = 1 << iota
	ItemEditable
	ItemEnabled
)

// Has returns whether all of the given flags are set.
func (f ItemFlags) Has(flags ItemFlags) bool {
	return f&flags == flags
}

// Index is the location of a cell.
type Index struct {
	Row    int
	Column Columns
}

// Table presents the entries of a scene as rows of a table with
// the fixed [Columns]. It is a thin view of the scene: all state
// lives in the scene, and every change of the scene is forwarded
// to the functions registered with [Table.OnDataChanged] and
// [Table.OnReset].
type Table struct {
	Scene *scene.Scene

	printer *message.Printer
	changed []func(top, bottom Index)
	reset   []func()
}

// NewTable returns a new table for the given scene, with labels
// in the given language (see [NewPrinter]).
func NewTable(sc *scene.Scene, lang string) *Table {
	t := &Table{Scene: sc, printer: NewPrinter(lang)}
	sc.OnChange(t.sceneChanged)
	return t
}

// OnDataChanged adds a function that is called with the top-left and
// bottom-right cells of every range of cells whose data changed.
func (t *Table) OnDataChanged(fun func(top, bottom Index)) {
	t.changed = append(t.changed, fun)
}

// OnReset adds a function that is called when rows are added or
// removed, after which all indexes held by the view are invalid.
func (t *Table) OnReset(fun func()) {
	t.reset = append(t.reset, fun)
}

func (t *Table) sceneChanged(ch scene.Change) {
	switch ch.Kind {
	case scene.RowChanged:
		t.dataChanged(t.SelectionRange(ch.Row))
	case scene.AllChanged:
		if n := t.RowCount(); n > 0 {
			t.dataChanged(Index{0, 0}, Index{n - 1, LastColumn})
		}
	case scene.Reset:
		for _, fun := range t.reset {
			fun()
		}
	}
}

func (t *Table) dataChanged(top, bottom Index) {
	for _, fun := range t.changed {
		fun(top, bottom)
	}
}

// RowCount returns the number of rows, which is the number of entries.
func (t *Table) RowCount() int {
	return t.Scene.Len()
}

// ColumnCount returns the number of columns, which is always [NumColumns].
func (t *Table) ColumnCount() int {
	return int(NumColumns)
}

func (t *Table) valid(row int, col Columns) bool {
	return row >= 0 && row < t.Scene.Len() && col >= 0 && col < NumColumns
}

// Data returns the data of the given cell for the given role,
// and false if the cell is not valid or has no data for the role.
//
//   - Name: the name as a string for display and edit.
//   - Color: the [color.RGBA] for display, edit and decoration.
//   - Mode: a translated "fill" or "wire" for display,
//     the [scene.RenderModes] as an int for edit, and [AlignCenter].
//   - Activated: the activation as a bool for display and edit.
func (t *Table) Data(row int, col Columns, role Roles) (any, bool) {
	if !t.valid(row, col) {
		return nil, false
	}
	e, _ := t.Scene.Entry(row)
	switch col {
	case NameColumn:
		if role == DisplayRole || role == EditRole {
			return e.Name, true
		}
	case ColorColumn:
		if role == DisplayRole || role == EditRole || role == DecorationRole {
			return e.Color, true
		}
	case ModeColumn:
		switch role {
		case DisplayRole:
			return t.modeLabel(e.Mode), true
		case EditRole:
			return int(e.Mode), true
		case AlignmentRole:
			return AlignCenter, true
		}
	case ActivatedColumn:
		if role == DisplayRole || role == EditRole {
			return e.Activated, true
		}
	}
	return nil, false
}

func (t *Table) modeLabel(mode scene.RenderModes) string {
	if mode == scene.Wireframe {
		return t.printer.Sprintf("wire")
	}
	return t.printer.Sprintf("fill")
}

// HeaderData returns the header of the given column for the given
// role: the translated column title for display, and a tooltip for
// the mode column.
func (t *Table) HeaderData(col Columns, role Roles) (any, bool) {
	switch role {
	case DisplayRole:
		switch col {
		case NameColumn:
			return t.printer.Sprintf("Name"), true
		case ColorColumn:
			return t.printer.Sprintf("Color"), true
		case ModeColumn:
			return t.printer.Sprintf("Mode"), true
		case ActivatedColumn:
			return t.printer.Sprintf("Activated"), true
		}
	case ToolTipRole:
		if col == ModeColumn {
			return t.printer.Sprintf("Rendering mode (fill/wireframe)"), true
		}
	}
	return nil, false
}

// SetData sets the data of the given cell from the given value,
// returning whether it was set. Values are accepted as follows:
//
//   - Name: a string.
//   - Color: a [color.Color] or a hex string.
//   - Mode: a [scene.RenderModes] or an int.
//   - Activated: a bool.
//
// An invalid cell or a value of the wrong type leaves the scene
// unchanged without any notification. Otherwise the scene sends
// one notification for the row.
func (t *Table) SetData(row int, col Columns, value any) bool {
	if !t.valid(row, col) {
		return false
	}
	switch col {
	case NameColumn:
		name, ok := value.(string)
		if !ok {
			return false
		}
		return t.Scene.SetName(row, name) == nil
	case ColorColumn:
		if value == nil {
			return false
		}
		switch value.(type) {
		case color.Color, string:
		default:
			return false
		}
		c, err := colors.FromAny(value)
		if err != nil {
			return false
		}
		return t.Scene.SetColor(row, c) == nil
	case ModeColumn:
		var mode scene.RenderModes
		switch v := value.(type) {
		case scene.RenderModes:
			mode = v
		case int:
			if v != int(int32(v)) {
				return false
			}
			mode = scene.RenderModes(v)
		default:
			return false
		}
		if !mode.IsValid() {
			return false
		}
		return t.Scene.SetMode(row, mode) == nil
	case ActivatedColumn:
		activated, ok := value.(bool)
		if !ok {
			return false
		}
		return t.Scene.SetActivated(row, activated) == nil
	}
	return false
}

// Flags returns the flags of the given cell. Valid cells are
// selectable and enabled; only names are edited as text, since
// the other columns are edited through a [Delegate].
func (t *Table) Flags(row int, col Columns) ItemFlags {
	if !t.valid(row, col) {
		return 0
	}
	flags := ItemSelectable | ItemEnabled
	if col == NameColumn {
		flags |= ItemEditable
	}
	return flags
}

// SelectionRange returns the first and last cells of the given row,
// for selecting the whole row.
func (t *Table) SelectionRange(row int) (top, bottom Index) {
	return Index{row, 0}, Index{row, LastColumn}
}
