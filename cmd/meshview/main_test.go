// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/meshview/base/iox/imagex"
	"cogentcore.org/meshview/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the command with the given arguments and a settings
// file in a temporary directory, returning its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("DefaultColor = \"#FF0000\"\n"), 0666))
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg, "-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", filepath.Join("testdata", "cube.off"), filepath.Join("testdata", "tetra.obj"))
	require.NoError(t, err)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "cube")
	assert.Contains(t, out, "tetra")
	assert.Contains(t, out, "fill")
	assert.Contains(t, out, "bounds (0, 0, 0)-(2, 2, 2)")
}

func TestInfoEditing(t *testing.T) {
	png := filepath.Join(t.TempDir(), "cells.png")
	out, err := run(t, "info", "--duplicate", "0", "--erase", "0", "--png", png, filepath.Join("testdata", "cube.off"))
	require.NoError(t, err)
	assert.Contains(t, out, "cube (copy)")

	img, f, err := imagex.Open(png)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 2*cellWidth, img.Bounds().Dx())
	assert.Equal(t, cellHeight, img.Bounds().Dy())
	r, g, b, _ := img.At(cellWidth/2, cellHeight/2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})
}

func TestInfoErrors(t *testing.T) {
	_, err := run(t, "info", filepath.Join("testdata", "missing.off"))
	assert.Error(t, err)
	_, err = run(t, "info", "--erase", "3", filepath.Join("testdata", "cube.off"))
	assert.Error(t, err)
	_, err = run(t, "info")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tetra.off")
	_, err := run(t, "convert", filepath.Join("testdata", "tetra.obj"), out)
	require.NoError(t, err)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	p, err := mesh.ReadOFF(f)
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumVertices())
	assert.Equal(t, 4, p.NumFaces())
}

func TestSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "saved.toml")
	out, err := run(t, "--lang", "fr", "settings", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "saved settings")
	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#FF0000")
	assert.Contains(t, string(data), "fr")
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(cfg, nil, 0666))
	logFile := filepath.Join(dir, "meshview.log")

	o := &options{configFile: cfg, logFile: logFile}
	require.NoError(t, o.setup(io.Discard))
	require.NotNil(t, o.logOut)
	slog.Warn("before close")
	require.NoError(t, o.closeLog())
	assert.Nil(t, o.logOut)
	assert.NoError(t, o.closeLog())

	slog.Warn("after close")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")

	_, err = run(t, "--log", logFile, "info", filepath.Join("testdata", "cube.off"))
	require.NoError(t, err)
}
