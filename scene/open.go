// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/base/fsx"
	"cogentcore.org/meshview/mesh"
)

func (sc *Scene) parser() mesh.Parser {
	if sc.Parser != nil {
		return sc.Parser
	}
	return mesh.DefaultParser
}

// parse reads a mesh with the scene parser, classifying any error
// as [ErrParse] or [ErrIO]. The result is validated and has its
// normals computed.
func (sc *Scene) parse(r io.Reader, name string) (*mesh.Polyhedron, error) {
	p, err := sc.parser().Parse(r)
	if err != nil {
		if errors.Is(err, ErrParse) {
			return nil, fmt.Errorf("scene: %q is not a valid mesh: %w", name, err)
		}
		return nil, fmt.Errorf("scene: reading %q: %w: %w", name, ErrIO, err)
	}
	if p == nil {
		return nil, fmt.Errorf("scene: %q is not a valid mesh: %w", name, ErrParse)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %q is not a valid mesh: %w: %w", name, ErrParse, err)
	}
	if p.FaceNormals == nil {
		p.ComputeNormals()
	}
	return p, nil
}

// Load reads a mesh from the given reader and appends it as a new
// entry with the given name and default display state, returning
// its index. On failure no entry is added and the error matches
// [ErrParse] for malformed data or [ErrIO] for read failures.
func (sc *Scene) Load(r io.Reader, name string, opts ...AddOptions) (int, error) {
	p, err := sc.parse(r, name)
	if err != nil {
		return -1, err
	}
	return sc.Add(p, name, opts...), nil
}

// readFile opens the given file after checking that it is a
// readable regular file.
func readFile(filename string) (*os.File, error) {
	ok, err := fsx.FileExists(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: %w: %w", ErrIO, err)
	}
	if !ok {
		return nil, fmt.Errorf("scene: %w: %q is not a readable file", ErrIO, filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: %w: %w", ErrIO, err)
	}
	return f, nil
}

// Open reads a mesh from the given file and appends it as a new
// entry named after the file, without directory or extension,
// returning its index. On failure no entry is added and the error
// matches [ErrIO] or [ErrParse].
func (sc *Scene) Open(filename string, opts ...AddOptions) (int, error) {
	slog.Info("opening file", "file", filename)
	f, err := readFile(filename)
	if err != nil {
		return -1, err
	}
	defer f.Close()
	opts = append([]AddOptions{WithSource(filename)}, opts...)
	return sc.Load(f, fsx.BaseName(filename), opts...)
}

// Reload reads entry i again from the file it was opened from,
// replacing its mesh and keeping its display state. It is an error
// if the entry was not opened from a file. On failure the entry
// keeps its current mesh.
func (sc *Scene) Reload(i int) error {
	if err := sc.checkIndex("Reload", i); err != nil {
		return err
	}
	e := sc.entries[i]
	if e.Source == "" {
		return fmt.Errorf("scene.Reload: entry %q was not opened from a file", e.Name)
	}
	slog.Info("reloading file", "file", e.Source, "row", i)
	f, err := readFile(e.Source)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := sc.parse(f, e.Name)
	if err != nil {
		return err
	}
	return sc.SetMesh(i, p)
}

// ReloadSource reloads every entry opened from the given file and
// returns the indexes of the reloaded entries, along with any errors.
func (sc *Scene) ReloadSource(filename string) ([]int, error) {
	var rows []int
	var errs []error
	for i, e := range sc.entries {
		if e.Source != filename {
			continue
		}
		if err := sc.Reload(i); err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, i)
	}
	return rows, errors.Join(errs...)
}
