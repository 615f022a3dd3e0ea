// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/math32"
)

// lineReader returns the non-empty lines of a text mesh file
// with comments starting with # removed.
type lineReader struct {
	sc     *bufio.Scanner
	format Formats
	line   int
}

func newLineReader(r io.Reader, format Formats) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc, format: format}
}

// next returns the fields of the next non-empty line, or io.EOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		line := lr.sc.Text()
		if ci := strings.IndexByte(line, '#'); ci >= 0 {
			line = line[:ci]
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// errorf returns a [ParseError] at the current line.
func (lr *lineReader) errorf(format string, a ...any) error {
	return &ParseError{Format: lr.format, Line: lr.line, Err: fmt.Errorf(format, a...)}
}

// unexpectedEOF returns a [ParseError] for data that ends too early.
func (lr *lineReader) unexpectedEOF(what string) error {
	return &ParseError{Format: lr.format, Line: lr.line, Err: fmt.Errorf("unexpected end of data reading %s", what)}
}

func parseFloats(fields []string) ([]float32, error) {
	fs := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		fs[i] = float32(v)
	}
	return fs, nil
}

// maxPrealloc is the largest number of vertices or faces
// allocated up front from the counts in a header.
const maxPrealloc = 1 << 16

// ReadOFF reads a polyhedron in the OFF format from the given reader.
// The header keyword may carry the usual prefixes (C, N, ST, 4 ...);
// only the first three coordinates of each vertex are used and any
// trailing values on a face line (such as a face color) are ignored.
// The normals are not computed.
func ReadOFF(r io.Reader) (*Polyhedron, error) {
	lr := newLineReader(r, OFF)
	fields, err := lr.next()
	if err == io.EOF {
		return nil, lr.unexpectedEOF("header")
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(fields[0], "OFF") {
		return nil, lr.errorf("missing OFF header, got %q", fields[0])
	}
	fields = fields[1:]
	if len(fields) == 0 {
		fields, err = lr.next()
		if err == io.EOF {
			return nil, lr.unexpectedEOF("counts")
		}
		if err != nil {
			return nil, err
		}
	}
	if len(fields) < 2 {
		return nil, lr.errorf("expected vertex and face counts, got %q", strings.Join(fields, " "))
	}
	nv, err1 := strconv.Atoi(fields[0])
	nf, err2 := strconv.Atoi(fields[1])
	if err := errors.Join(err1, err2); err != nil || nv < 0 || nf < 0 {
		return nil, lr.errorf("invalid counts %q", strings.Join(fields, " "))
	}

	// counts are not trusted for allocation until the data is read
	p := &Polyhedron{
		Vertices: make([]math32.Vector3, 0, min(nv, maxPrealloc)),
		Faces:    make([][]int, 0, min(nf, maxPrealloc)),
	}
	for k := 0; k < nv; k++ {
		fields, err := lr.next()
		if err == io.EOF {
			return nil, lr.unexpectedEOF("vertices")
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, lr.errorf("vertex needs 3 coordinates, got %d", len(fields))
		}
		xyz, err := parseFloats(fields[:3])
		if err != nil {
			return nil, lr.errorf("invalid vertex: %w", err)
		}
		p.Vertices = append(p.Vertices, math32.Vec3(xyz[0], xyz[1], xyz[2]))
	}
	for k := 0; k < nf; k++ {
		fields, err := lr.next()
		if err == io.EOF {
			return nil, lr.unexpectedEOF("faces")
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 3 || n > len(fields)-1 {
			return nil, lr.errorf("invalid face %q", strings.Join(fields, " "))
		}
		face := make([]int, n)
		for i := 0; i < n; i++ {
			vi, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, lr.errorf("invalid face index %q", fields[i+1])
			}
			if vi < 0 || vi >= nv {
				return nil, lr.errorf("face index %d out of range [0, %d)", vi, nv)
			}
			face[i] = vi
		}
		p.Faces = append(p.Faces, face)
	}
	return p, nil
}

// WriteOFF writes the given polyhedron in the OFF format.
func WriteOFF(w io.Writer, p *Polyhedron) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d 0\n", len(p.Vertices), len(p.Faces))
	for _, v := range p.Vertices {
		fmt.Fprintf(bw, "%g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, f := range p.Faces {
		fmt.Fprintf(bw, "%d", len(f))
		for _, vi := range f {
			fmt.Fprintf(bw, " %d", vi)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
