// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshview/base/errors"
	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading ~ in the given path to the home
// directory of the current user. Paths without a leading ~ are
// returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// FileExists checks whether given file exists and is a regular file,
// returning true if so, false if not, and error if there is an error
// in accessing the file.
func FileExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// BaseName returns the file name of the given path
// without its directory or extension: "/a/b/cube.off" gives "cube".
func BaseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// Ext returns the lower-cased extension of the given path without the dot.
func Ext(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
