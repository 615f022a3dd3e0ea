// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal capabilities
// of the output. Attributes are written as key=value pairs.
type Handler struct {
	out    *termenv.Output
	level  slog.Leveler
	mu     *sync.Mutex
	groups []string

	// pre holds the attributes added through WithAttrs, already formatted.
	pre string
}

// NewHandler returns a new [Handler] writing to the given writer
// and showing messages at or above the given level. Colors are
// detected from the writer; pass a [termenv.OutputOption] such as
// termenv.WithProfile(termenv.Ascii) to force plain output.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{
		out:   termenv.NewOutput(w, opts...),
		level: level,
		mu:    &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default logger to a [Handler] on
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.pre)
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	prefix := h.groupPrefix()
	for _, a := range attrs {
		writeAttr(&sb, prefix, a)
	}
	nh := *h
	nh.pre += sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// levelString returns the colored short name of the level.
func (h *Handler) levelString(level slog.Level) string {
	var name, clr string
	switch {
	case level >= slog.LevelError:
		name, clr = "ERROR", "#ff5f5f"
	case level >= slog.LevelWarn:
		name, clr = "WARN ", "#ffaf00"
	case level >= slog.LevelInfo:
		name, clr = "INFO ", "#5fafff"
	default:
		name, clr = "DEBUG", "#8a8a8a"
	}
	return h.out.String(name).Foreground(h.out.Color(clr)).Bold().String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, gp, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value.Any())
}
