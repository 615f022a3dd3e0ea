// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview shows a scene as a table in a terminal, where the
// mouse and keyboard edit it through a [sceneview.Delegate].
package termview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/meshview/events"
	"cogentcore.org/meshview/scene"
	"cogentcore.org/meshview/sceneview"
	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickTime is the longest time between two presses
// on the same cell for them to be a double click.
var DoubleClickTime = 400 * time.Millisecond

// Palette are the colors offered by [PaletteDialog].
var Palette = []color.RGBA{
	{100, 100, 255, 255},
	{0, 255, 0, 255},
	{255, 80, 80, 255},
	{255, 200, 0, 255},
	{0, 200, 200, 255},
	{200, 100, 255, 255},
	{220, 220, 220, 255},
}

// PaletteDialog is a [sceneview.ColorDialog] that chooses the
// next color of [Palette] each time.
type PaletteDialog struct {
	next int
}

func (d *PaletteDialog) Color(initial color.RGBA) (color.RGBA, bool) {
	c := Palette[d.next%len(Palette)]
	d.next++
	return c, true
}

// fileChangedMsg is sent when a watched mesh file changes.
type fileChangedMsg string

// Model is the bubbletea model of the scene table.
type Model struct {
	Table    *sceneview.Table
	Delegate *sceneview.Delegate

	// Watcher, if set, reports files to reload.
	Watcher *scene.Watcher

	// now returns the current time.
	now func() time.Time

	lastPress     time.Time
	lastPressCell image.Point

	status    string
	statusErr bool
	width     int
}

// New returns a new model for the given table, using the given
// color dialog for the color column.
func New(t *sceneview.Table, dlg sceneview.ColorDialog) *Model {
	return &Model{Table: t, Delegate: sceneview.NewDelegate(t, dlg), now: time.Now}
}

func (m *Model) scene() *scene.Scene {
	return m.Table.Scene
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange returns a command waiting for the next changed file.
func (m *Model) waitForChange() tea.Cmd {
	if m.Watcher == nil {
		return nil
	}
	ch := m.Watcher.Changed()
	return func() tea.Msg {
		name, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg(name)
	}
}

func (m *Model) setStatus(format string, a ...any) {
	m.status = fmt.Sprintf(format, a...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	slog.Error(err.Error())
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case fileChangedMsg:
		rows, err := m.scene().ReloadSource(string(msg))
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus("reloaded %s (%d entries)", string(msg), len(rows))
		}
		return m, m.waitForChange()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	sc := m.scene()
	sel := sc.Selected()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up", "k":
		if sc.Len() > 0 {
			sc.SetSelected(max(sel-1, 0))
		}
	case "down", "j":
		if sc.Len() > 0 {
			sc.SetSelected(min(sel+1, sc.Len()-1))
		}
	case " ", "a":
		if sel >= 0 {
			m.Table.SetData(sel, sceneview.ActivatedColumn, !sc.Activated(sel))
		}
	case "m":
		if sel >= 0 {
			m.Table.SetData(sel, sceneview.ModeColumn, sc.Mode(sel).Toggle())
		}
	case "c":
		if sel >= 0 && m.Delegate.Dialog != nil {
			if c, ok := m.Delegate.Dialog.Color(sc.Color(sel)); ok {
				m.Table.SetData(sel, sceneview.ColorColumn, c)
			}
		}
	case "d":
		if sel >= 0 {
			i, err := sc.Duplicate(sel)
			if err != nil {
				m.setError(err)
				break
			}
			sc.SetSelected(i)
			m.setStatus("duplicated %q", sc.Name(sel))
		}
	case "x", "delete":
		if sel >= 0 {
			name := sc.Name(sel)
			i, err := sc.Erase(sel)
			if err != nil {
				m.setError(err)
				break
			}
			sc.SetSelected(i)
			m.setStatus("erased %q", name)
		}
	case "r":
		if sel >= 0 {
			if err := sc.Reload(sel); err != nil {
				m.setError(err)
				break
			}
			m.setStatus("reloaded %q", sc.Name(sel))
		}
	}
	return nil
}

// handleMouse converts the given mouse message into an [events.Mouse]
// for the cell under it and gives it to the delegate. Unhandled presses
// select the row.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	where := image.Pt(msg.X, msg.Y)
	row, col, ok := CellAt(where, m.scene().Len())
	if !ok {
		return
	}
	ev := events.NewMouse(mouseType(msg), mouseButton(msg.Button), where)
	if ev.Type() == events.MouseDown {
		now := m.now()
		if where == m.lastPressCell && now.Sub(m.lastPress) <= DoubleClickTime {
			ev.Typ = events.DoubleClick
			m.lastPress = time.Time{}
		} else {
			m.lastPress = now
			m.lastPressCell = where
		}
	}
	if ev.Type() == events.UnknownType {
		return
	}
	handled := m.Delegate.EditorEvent(ev, CellBounds(row, col), row, col)
	slog.Debug("mouse event", "event", ev.String(), "row", row, "column", col, "handled", handled)
	if !handled && ev.Type() == events.MouseDown && ev.Button == events.Left {
		m.scene().SetSelected(row)
	}
}

func mouseType(msg tea.MouseMsg) events.Types {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return events.UnknownType
		}
		return events.MouseDown
	case tea.MouseActionRelease:
		return events.MouseUp
	case tea.MouseActionMotion:
		return events.MouseMove
	}
	return events.UnknownType
}

func mouseButton(b tea.MouseButton) events.Buttons {
	switch b {
	case tea.MouseButtonLeft:
		return events.Left
	case tea.MouseButtonMiddle:
		return events.Middle
	case tea.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}
