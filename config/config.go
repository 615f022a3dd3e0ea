// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the user settings of the mesh viewer,
// which are read from a TOML file over their default values.
package config

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/base/fsx"
	"cogentcore.org/meshview/base/iox/tomlx"
	"cogentcore.org/meshview/base/reflectx"
	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/scene"
)

// DefaultFile is the settings file used when none is given.
const DefaultFile = "~/.config/meshview/settings.toml"

// Settings are the user settings.
type Settings struct {

	// DefaultColor is the hex color of entries added without one.
	DefaultColor string `default:"#6464FF"`

	// Highlights are the lightness factors of selected and
	// unselected entries.
	Highlights colors.Highlights

	// Language is the BCP 47 language of the table labels.
	Language string `default:"en"`

	// Watch is whether to reload meshes when their files change.
	Watch bool `default:"false"`

	// Log contains the logging settings.
	Log Log
}

// Log are the logging settings. The command line flags
// of the same names override them.
type Log struct {

	// VeryVerbose shows debug messages.
	VeryVerbose bool `default:"false"`

	// Verbose shows informational messages.
	Verbose bool `default:"false"`

	// Quiet only shows errors.
	Quiet bool `default:"false"`
}

// New returns new settings with their default values.
func New() *Settings {
	s := &Settings{}
	SetFromDefaults(s)
	return s
}

// SetFromDefaults sets the values of the given settings object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(s any) error {
	return errors.Log(reflectx.SetFromDefaultTags(s))
}

// Open reads the settings from the given TOML file over their current
// values. A leading ~ in the filename is the home directory.
// A missing file is not an error if it is [DefaultFile].
func (s *Settings) Open(filename string) error {
	fn, err := fsx.ExpandHome(filename)
	if err != nil {
		return err
	}
	err = tomlx.Open(s, fn)
	if errors.Is(err, fs.ErrNotExist) && filename == DefaultFile {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %q: %w", filename, err)
	}
	return s.Validate()
}

// Save writes the settings to the given TOML file, creating its
// directory if needed. A leading ~ in the filename is the home directory.
func (s *Settings) Save(filename string) error {
	fn, err := fsx.ExpandHome(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		return err
	}
	return tomlx.Save(s, fn)
}

// Validate returns an error if any setting has an invalid value.
func (s *Settings) Validate() error {
	_, err := s.Color()
	return err
}

// Color returns the parsed [Settings.DefaultColor].
func (s *Settings) Color() (color.RGBA, error) {
	c, err := colors.FromHex(s.DefaultColor)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: DefaultColor: %w", err)
	}
	return c, nil
}

// Apply makes the given scene use the settings.
func (s *Settings) Apply(sc *scene.Scene) {
	sc.Highlights = s.Highlights
}

// AddOptions returns the options for adding entries to a scene
// with the settings.
func (s *Settings) AddOptions() []scene.AddOptions {
	c, err := s.Color()
	if errors.Log(err) != nil {
		return nil
	}
	return []scene.AddOptions{scene.WithColor(c)}
}
