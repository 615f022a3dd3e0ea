// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tif": TIFF, "bmp": BMP, "gif": GIF} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".off")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{10, 200, 30, 255})
	for _, ext := range []string{"png", "bmp", "tiff"} {
		fn := filepath.Join(t.TempDir(), "img."+ext)
		require.NoError(t, Save(img, fn))
		got, f, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, ext, map[Formats]string{PNG: "png", BMP: "bmp", TIFF: "tiff"}[f])
		assert.Equal(t, img.Bounds(), got.Bounds())
		assert.Equal(t, color.RGBA{10, 200, 30, 255}, AsRGBA(got).RGBAAt(1, 2))
	}
	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "img.off")))
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{11, 9, 10, 255}, 1))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 1))
}
