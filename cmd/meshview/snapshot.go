// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"

	"cogentcore.org/meshview/base/iox/imagex"
	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/sceneview"
	"golang.org/x/image/draw"
)

// snapshot cell size, in pixels.
const (
	cellWidth  = 48
	cellHeight = 24
)

// snapshot returns an image of the color and activation cells of the
// table, with one row per entry and the selected row highlighted.
func snapshot(t *sceneview.Table, d *sceneview.Delegate) *image.RGBA {
	n := max(t.RowCount(), 1)
	img := image.NewRGBA(image.Rect(0, 0, 2*cellWidth, n*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colors.White), image.Point{}, draw.Src)
	for row := 0; row < t.RowCount(); row++ {
		y := row * cellHeight
		swatch := image.Rect(4, y+4, cellWidth-4, y+cellHeight-4)
		if v, ok := t.Data(row, sceneview.ColorColumn, sceneview.DecorationRole); ok {
			draw.Draw(img, swatch, image.NewUniform(v.(color.RGBA)), image.Point{}, draw.Src)
		}
		cell := image.Rect(cellWidth, y, 2*cellWidth, y+cellHeight)
		d.Paint(img, cell, row, sceneview.ActivatedColumn, row == t.Scene.Selected())
	}
	return img
}

// saveSnapshot saves the [snapshot] of the table to the given image file.
func saveSnapshot(t *sceneview.Table, d *sceneview.Delegate, filename string) error {
	return imagex.Save(snapshot(t, d), filename)
}
