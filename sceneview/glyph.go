// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"image/color"

	"cogentcore.org/meshview/colors"
	"golang.org/x/image/draw"
)

// glyphSize is the size of the check glyph images, which are
// scaled to the cell when painted.
const glyphSize = 32

var (
	// CheckOn is the glyph painted for an activated entry.
	CheckOn = checkGlyph(true)

	// CheckOff is the glyph painted for an entry that is not activated.
	CheckOff = checkGlyph(false)
)

// checkGlyph returns a check box, with a check mark if checked.
func checkGlyph(checked bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, glyphSize, glyphSize))
	border := color.RGBA{96, 96, 96, 255}
	draw.Draw(img, image.Rect(4, 4, glyphSize-4, glyphSize-4), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(6, 6, glyphSize-6, glyphSize-6), image.NewUniform(colors.White), image.Point{}, draw.Src)
	if !checked {
		return img
	}
	mark := color.RGBA{0, 140, 0, 255}
	thickLine(img, image.Pt(9, 16), image.Pt(14, 21), mark)
	thickLine(img, image.Pt(14, 21), image.Pt(23, 10), mark)
	return img
}

// thickLine draws a line 3 pixels wide from a to b.
func thickLine(img *image.RGBA, a, b image.Point, c color.RGBA) {
	d := b.Sub(a)
	n := max(abs(d.X), abs(d.Y))
	for i := 0; i <= n; i++ {
		p := a.Add(d.Mul(i).Div(max(n, 1)))
		draw.Draw(img, image.Rect(p.X-1, p.Y-1, p.X+2, p.Y+2), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// HitSquare returns the square centered in the given cell, with a
// side equal to the shorter side of the cell, in which the check
// glyph is painted and presses toggle activation.
func HitSquare(cell image.Rectangle) image.Rectangle {
	size := min(cell.Dx(), cell.Dy())
	x := cell.Min.X + cell.Dx()/2 - size/2
	y := cell.Min.Y + cell.Dy()/2 - size/2
	return image.Rect(x, y, x+size, y+size)
}

// paintGlyph paints the given glyph scaled smoothly to fill the square.
func paintGlyph(dst draw.Image, square image.Rectangle, glyph image.Image) {
	if square.Empty() {
		return
	}
	draw.BiLinear.Scale(dst, square, glyph, glyph.Bounds(), draw.Over, nil)
}
