// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, "#6464FF", s.DefaultColor)
	assert.Equal(t, colors.DefaultHighlights, s.Highlights)
	assert.Equal(t, "en", s.Language)
	assert.False(t, s.Watch)
	assert.Equal(t, Log{}, s.Log)
	c, err := s.Color()
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultColor, c)
}

func TestOpen(t *testing.T) {
	s := New()
	require.NoError(t, s.Open(filepath.Join("testdata", "settings.toml")))
	assert.Equal(t, "#FF8000", s.DefaultColor)
	assert.Equal(t, "fr", s.Language)
	assert.True(t, s.Watch)
	assert.True(t, s.Log.Verbose)
	assert.Equal(t, colors.Highlights{FillSelected: 150, EdgeSelected: 70, EdgeNormal: 50}, s.Highlights)

	sc := scene.New()
	s.Apply(sc)
	assert.Equal(t, 150, sc.Highlights.FillSelected)
	sc.Add(nil, "a", s.AddOptions()...)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, sc.Color(0))
}

func TestOpenErrors(t *testing.T) {
	s := New()
	assert.Error(t, s.Open(filepath.Join("testdata", "missing.toml")))

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`DefaultColor = "#12"`), 0666))
	assert.Error(t, s.Open(bad))

	require.NoError(t, os.WriteFile(bad, []byte(`Watch = [`), 0666))
	assert.Error(t, s.Open(bad))
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "settings.toml")
	s := New()
	s.Language = "de"
	s.Highlights.EdgeNormal = 40
	require.NoError(t, s.Save(fn))

	got := New()
	require.NoError(t, got.Open(fn))
	assert.Equal(t, s, got)
}
