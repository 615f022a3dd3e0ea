// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Lighter returns a lighter (or darker) version of the given color.
// The factor is a percentage: 150 gives a color with 50% more
// brightness, 100 returns the same color, and a factor below 100
// is the same as [Darker] with a factor of 10000/factor.
// The color is converted to HSV and its value is multiplied by
// factor/100; if the value would exceed 1, the excess is taken from
// the saturation instead. Alpha is preserved, and the HSV math is
// done on the straight channels of translucent colors.
// A factor <= 0 returns the color unchanged.
func Lighter(c color.RGBA, factor int) color.RGBA {
	switch {
	case factor <= 0:
		return c
	case factor < 100:
		return Darker(c, 10000/factor)
	}
	h, s, v := toColorful(c).Hsv()
	v = v * float64(factor) / 100
	if v > 1 {
		s -= v - 1
		if s < 0 {
			s = 0
		}
		v = 1
	}
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// Darker returns a darker (or lighter) version of the given color.
// The factor is a percentage: 300 gives a color with a third of the
// brightness, 100 returns the same color, and a factor below 100
// is the same as [Lighter] with a factor of 10000/factor.
// A factor <= 0 returns the color unchanged.
func Darker(c color.RGBA, factor int) color.RGBA {
	switch {
	case factor <= 0:
		return c
	case factor < 100:
		return Lighter(c, 10000/factor)
	}
	h, s, v := toColorful(c).Hsv()
	v = v * 100 / float64(factor)
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// toColorful returns the straight (not alpha-premultiplied)
// color channels of c.
func toColorful(c color.RGBA) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}

// fromColorful returns the alpha-premultiplied color with the given
// straight channels and alpha.
func fromColorful(cf colorful.Color, a uint8) color.RGBA {
	r, g, b := cf.Clamped().RGB255()
	return color.RGBAModel.Convert(color.NRGBA{r, g, b, a}).(color.RGBA)
}
