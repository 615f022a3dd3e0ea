// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and formatting, and the
// lightness adjustments used to highlight selected scene entries.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/base/reflectx"
)

var (
	// White is pure white.
	White = color.RGBA{255, 255, 255, 255}

	// Black is pure black.
	Black = color.RGBA{0, 0, 0, 255}

	// Green is the initial color offered by the color chooser.
	Green = color.RGBA{0, 255, 0, 255}
)

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color.
// A nil color, including a nil pointer, gives the zero color.
func AsRGBA(c color.Color) color.RGBA {
	if reflectx.AnyIsNil(c) {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given hex color string
// and returns the resulting color. It accepts
// #RGB, #RRGGBB and #RRGGBBAA, with or without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex is a version of [FromHex] that panics on errors.
// It should only be used in cases where the color is hardcoded.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string: #RRGGBB for opaque colors and #RRGGBBAA otherwise.
func AsHex(c color.Color) string {
	if reflectx.AnyIsNil(c) {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromAny returns a color from the given value, which can be
// a [color.Color] or a hex string.
func FromAny(val any) (color.RGBA, error) {
	switch v := val.(type) {
	case color.RGBA:
		return v, nil
	case *color.RGBA:
		if v == nil {
			return color.RGBA{}, errors.New("colors.FromAny: nil *color.RGBA")
		}
		return *v, nil
	case color.Color:
		if reflectx.AnyIsNil(v) {
			return color.RGBA{}, fmt.Errorf("colors.FromAny: nil %T", v)
		}
		return AsRGBA(v), nil
	case string:
		return FromHex(v)
	}
	return color.RGBA{}, fmt.Errorf("colors.FromAny: could not get color from value %v of type %T", val, val)
}
