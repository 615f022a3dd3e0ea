// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/meshview/base/errors"
	"github.com/h2non/filetype"
)

// ErrParse is the base error of all errors returned for
// data that is not a well-formed mesh.
var ErrParse = errors.New("mesh: malformed mesh data")

// ParseError describes a problem at a given line of mesh data.
// It matches [ErrParse] with [errors.Is].
type ParseError struct {

	// Format is the format being read.
	Format Formats

	// Line is the 1-based line of the problem, or 0 if not known.
	Line int

	// Err is the underlying problem.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("mesh: %v line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("mesh: %v: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Formats are the supported mesh file formats.
type Formats int32

const (
	// UnknownFormat is data that was not recognized.
	UnknownFormat Formats = iota

	// OFF is the Object File Format from Geomview.
	OFF

	// OBJ is the Wavefront OBJ format.
	OBJ
)

func (f Formats) String() string {
	switch f {
	case OFF:
		return "OFF"
	case OBJ:
		return "OBJ"
	}
	return "unknown"
}

// Parser parses the external representation of a mesh.
type Parser interface {

	// Parse reads a polyhedron from the given reader. Malformed data
	// gives an error matching [ErrParse]; read failures are returned as is.
	Parse(r io.Reader) (*Polyhedron, error)
}

// ParserFunc is a function that implements [Parser].
type ParserFunc func(r io.Reader) (*Polyhedron, error)

func (f ParserFunc) Parse(r io.Reader) (*Polyhedron, error) {
	return f(r)
}

// sniffLen is the number of leading bytes checked for binary file types.
const sniffLen = 512

// errUnrecognized is the problem reported for text in no known format.
var errUnrecognized = errors.New("unrecognized mesh format")

// sniffBinary returns an error matching [ErrParse] if the given
// leading bytes are those of a known binary file type such as an
// image or an archive.
func sniffBinary(head []byte) error {
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		return &ParseError{Err: fmt.Errorf("%s data (%s) is not a mesh", kind.Extension, kind.MIME.Value)}
	}
	return nil
}

// lineFormat returns the format started by the given line, and
// whether the line is a statement at all: blank and comment lines
// are not. A statement of no known format gives [UnknownFormat].
func lineFormat(line string) (Formats, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0][0] == '#' {
		return UnknownFormat, false
	}
	switch {
	case strings.HasSuffix(fields[0], "OFF"):
		return OFF, true
	case fields[0] == "v" || fields[0] == "o" || fields[0] == "g" || fields[0] == "mtllib":
		return OBJ, true
	}
	return UnknownFormat, true
}

// Sniff returns the format of mesh data starting with the given bytes,
// from its first statement. Data recognized as a known binary file type
// such as an image or an archive gives an error matching [ErrParse],
// as does data without a statement of a known format.
func Sniff(head []byte) (Formats, error) {
	if err := sniffBinary(head); err != nil {
		return UnknownFormat, err
	}
	sc := bufio.NewScanner(bytes.NewReader(head))
	for sc.Scan() {
		f, ok := lineFormat(sc.Text())
		if !ok {
			continue
		}
		if f == UnknownFormat {
			break
		}
		return f, nil
	}
	return UnknownFormat, &ParseError{Err: errUnrecognized}
}

// Parse reads a polyhedron in any supported format from the given
// reader, detecting the format from its first statement however
// far into the data it is. The result has its normals computed.
func Parse(r io.Reader) (*Polyhedron, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	if err := sniffBinary(head); err != nil {
		return nil, err
	}

	// the lines read to find the format are given back to the reader
	var lead bytes.Buffer
	format := UnknownFormat
	for {
		line, err := br.ReadString('\n')
		lead.WriteString(line)
		if f, ok := lineFormat(line); ok {
			if f == UnknownFormat {
				return nil, &ParseError{Err: errUnrecognized}
			}
			format = f
			break
		}
		if err == io.EOF {
			return nil, &ParseError{Err: errUnrecognized}
		}
		if err != nil {
			return nil, err
		}
	}
	rest := io.MultiReader(&lead, br)

	var p *Polyhedron
	switch format {
	case OFF:
		p, err = ReadOFF(rest)
	case OBJ:
		p, err = ReadOBJ(rest)
	}
	if err != nil {
		return nil, err
	}
	p.ComputeNormals()
	return p, nil
}

// DefaultParser is the [Parser] used by default, which is [Parse].
var DefaultParser Parser = ParserFunc(Parse)
