// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshview/base/errors"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages is whether [Assert] saves the images it is given
// instead of comparing against them. It is set if the environment
// variable MESHVIEW_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("MESHVIEW_UPDATE_TESTDATA") == "true"

// CompareColors returns whether no component of the two colors
// differs by more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	return within(cc.R, ic.R) && within(cc.G, ic.G) && within(cc.B, ic.B) && within(cc.A, ic.A)
}

// Assert asserts that the given image is equivalent to the image
// stored at the given filename in the testdata directory, with ".png"
// added if there is no extension. If it is not, it reports an error
// and saves the image next to it with ".fail" before the extension.
// If there is no image at the given filename yet, it is created.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext

	save := func(fn string) {
		if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
			t.Errorf("imagex.Assert: making testdata directory: %v", err)
			return
		}
		if err := Save(img, fn); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", fn, err)
		}
	}

	if UpdateTestImages {
		save(filename)
		os.RemoveAll(failFilename)
		return
	}
	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: opening saved image: %v", err)
			return
		}
		save(filename)
		return
	}

	ib, fb := img.Bounds(), fimg.Bounds()
	if ib != fb {
		t.Errorf("imagex.Assert: expected bounds %v for %s, but got %v; see %s", fb, filename, ib, failFilename)
		save(failFilename)
		return
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(fimg.At(x, y)).(color.RGBA)
			if !CompareColors(cc, ic, 1) {
				t.Errorf("imagex.Assert: image for %s differs; see %s; expected color %v at (%d, %d), but got %v", filename, failFilename, ic, x, y, cc)
				save(failFilename)
				return
			}
		}
	}
	os.RemoveAll(failFilename)
}
