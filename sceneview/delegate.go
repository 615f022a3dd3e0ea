// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/events"
	"cogentcore.org/meshview/scene"
	"golang.org/x/image/draw"
)

// ColorDialog asks the user for a color. It returns false if
// the user canceled.
type ColorDialog interface {
	Color(initial color.RGBA) (color.RGBA, bool)
}

// ColorDialogFunc is a function that implements [ColorDialog].
type ColorDialogFunc func(initial color.RGBA) (color.RGBA, bool)

func (f ColorDialogFunc) Color(initial color.RGBA) (color.RGBA, bool) {
	return f(initial)
}

// Delegate handles the mouse interaction and painting of the cells
// of a [Table] that are not edited as text: presses toggle the
// activation and the render mode, and open a [ColorDialog] for the
// color. The view handles and paints all other cells generically.
type Delegate struct {
	Table *Table

	// Dialog is used to choose colors. If it is nil,
	// presses on the color column do nothing.
	Dialog ColorDialog

	// Highlight is the background of selected painted cells.
	Highlight color.RGBA
}

// NewDelegate returns a new delegate for the given table.
func NewDelegate(t *Table, dlg ColorDialog) *Delegate {
	return &Delegate{Table: t, Dialog: dlg, Highlight: color.RGBA{48, 140, 198, 255}}
}

// EditorEvent handles the given mouse event on the given cell,
// whose bounds in the view are cell. It returns whether the event
// was consumed, in which case the view must not process it further,
// and marks it as handled.
//
//   - Activated: a left press inside the [HitSquare] toggles the
//     activation. Presses are never consumed, so that the view can
//     still change the selection; all other events are consumed.
//   - Color: a press opens the color dialog, and sets the chosen color
//     unless the dialog is canceled. Double clicks are consumed.
//   - Mode: a press toggles between fill and wireframe.
//     Double clicks are consumed.
//   - Name: nothing is consumed, so that the view edits the name.
func (d *Delegate) EditorEvent(ev *events.Mouse, cell image.Rectangle, row int, col Columns) bool {
	handled := d.editorEvent(ev, cell, row, col)
	if handled {
		ev.SetHandled()
	}
	return handled
}

func (d *Delegate) editorEvent(ev *events.Mouse, cell image.Rectangle, row int, col Columns) bool {
	t := d.Table
	switch col {
	case ActivatedColumn:
		if ev.Type() != events.MouseDown {
			return true
		}
		if ev.Button == events.Left && ev.Where.In(HitSquare(cell)) {
			if v, ok := t.Data(row, col, EditRole); ok {
				t.SetData(row, col, !v.(bool))
			}
		}
		return false
	case ColorColumn:
		switch ev.Type() {
		case events.MouseDown:
			if d.Dialog == nil {
				return false
			}
			if c, ok := d.Dialog.Color(colors.Green); ok {
				t.SetData(row, col, c)
			}
		case events.DoubleClick:
			return true
		}
		return false
	case ModeColumn:
		switch ev.Type() {
		case events.MouseDown:
			v, ok := t.Data(row, col, EditRole)
			if !ok {
				return false
			}
			mode := scene.RenderModes(v.(int))
			slog.Debug("toggling render mode", "row", row, "mode", mode)
			t.SetData(row, col, mode.Toggle())
		case events.DoubleClick:
			return true
		}
		return false
	}
	return false
}

// Paint paints the given cell into dst, returning whether it did.
// Only the activation cells are painted, with a check glyph scaled
// into the [HitSquare] over the highlight color if selected; the view
// paints all other cells generically, using [Delegate.Glyph] and the
// data of the table.
func (d *Delegate) Paint(dst draw.Image, cell image.Rectangle, row int, col Columns, selected bool) bool {
	if col != ActivatedColumn {
		return false
	}
	v, ok := d.Table.Data(row, col, DisplayRole)
	if !ok {
		return false
	}
	if selected {
		draw.Draw(dst, cell, image.NewUniform(d.Highlight), image.Point{}, draw.Src)
	}
	glyph := CheckOff
	if v.(bool) {
		glyph = CheckOn
	}
	paintGlyph(dst, HitSquare(cell), glyph)
	return true
}

// Glyph returns a short text rendition of what is drawn in the
// given cell in place of a text editor: "check" or "uncheck" for
// activation, the mode label and the hex color. It returns ""
// for names and invalid cells.
func (d *Delegate) Glyph(row int, col Columns) string {
	v, ok := d.Table.Data(row, col, DisplayRole)
	if !ok {
		return ""
	}
	switch col {
	case ActivatedColumn:
		if v.(bool) {
			return "check"
		}
		return "uncheck"
	case ModeColumn:
		return v.(string)
	case ColorColumn:
		return colors.AsHex(v.(color.RGBA))
	}
	return ""
}
