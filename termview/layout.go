// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"image"

	"cogentcore.org/meshview/sceneview"
)

// ColumnWidths are the widths of the table columns, in terminal cells.
var ColumnWidths = [sceneview.NumColumns]int{24, 9, 8, 11}

// headerLines is the number of lines above the first row.
const headerLines = 1

// columnX returns the x of the first terminal cell of the given column.
func columnX(col sceneview.Columns) int {
	x := 0
	for c := sceneview.Columns(0); c < col; c++ {
		x += ColumnWidths[c] + 1
	}
	return x
}

// CellBounds returns the bounds of the given table cell on the terminal,
// where each point is one character cell.
func CellBounds(row int, col sceneview.Columns) image.Rectangle {
	x := columnX(col)
	y := headerLines + row
	return image.Rect(x, y, x+ColumnWidths[col], y+1)
}

// CellAt returns the table cell at the given terminal position,
// and false if there is no cell there.
func CellAt(p image.Point, rows int) (row int, col sceneview.Columns, ok bool) {
	row = p.Y - headerLines
	if row < 0 || row >= rows {
		return 0, 0, false
	}
	for c := sceneview.Columns(0); c < sceneview.NumColumns; c++ {
		if p.In(CellBounds(row, c)) {
			return row, c, true
		}
	}
	return 0, 0, false
}
