// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.off")
	require.NoError(t, os.WriteFile(fn, []byte("OFF\n0 0 0\n"), 0o666))

	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing.off"))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "cube", BaseName("/a/b/cube.off"))
	assert.Equal(t, "cube", BaseName("cube.tar.off"))
	assert.Equal(t, "cube", BaseName("cube"))
	assert.Equal(t, ".hidden", BaseName(".hidden"))
	assert.Equal(t, "off", Ext("/x/Cube.OFF"))
}

func TestExpandHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err := ExpandHome("~/meshview.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "meshview.toml"), p)

	p, err = ExpandHome("/etc/meshview.toml")
	assert.NoError(t, err)
	assert.Equal(t, "/etc/meshview.toml", p)
}
