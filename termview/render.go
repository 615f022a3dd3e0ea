// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/meshview/colors"
	"cogentcore.org/meshview/sceneview"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// cell renders the given text in a cell of the given column,
// truncated to the column width.
func cell(col sceneview.Columns, text string, style lipgloss.Style) string {
	w := ColumnWidths[col]
	if lipgloss.Width(text) > w {
		text = string([]rune(text)[:w-1]) + "…"
	}
	st := style.Width(w).MaxWidth(w)
	if col != sceneview.NameColumn {
		st = st.Align(lipgloss.Center)
	}
	return st.Render(text)
}

// Render returns the table of the given scene as text, with the
// layout given by [CellBounds].
func Render(t *sceneview.Table, d *sceneview.Delegate) string {
	var sb strings.Builder
	var header []string
	for col := sceneview.Columns(0); col < sceneview.NumColumns; col++ {
		h, _ := t.HeaderData(col, sceneview.DisplayRole)
		header = append(header, cell(col, h.(string), headerStyle))
	}
	sb.WriteString(strings.Join(header, " "))
	sb.WriteByte('\n')

	sel := t.Scene.Selected()
	for row := 0; row < t.RowCount(); row++ {
		base := lipgloss.NewStyle()
		if row == sel {
			base = selectedStyle
		}
		var cells []string
		for col := sceneview.Columns(0); col < sceneview.NumColumns; col++ {
			cells = append(cells, cell(col, cellText(t, d, row, col), cellStyle(t, base, row, col)))
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellText(t *sceneview.Table, d *sceneview.Delegate, row int, col sceneview.Columns) string {
	switch col {
	case sceneview.NameColumn:
		v, _ := t.Data(row, col, sceneview.DisplayRole)
		return v.(string)
	case sceneview.ColorColumn:
		return "███"
	case sceneview.ActivatedColumn:
		if d.Glyph(row, col) == "check" {
			return "x"
		}
		return "·"
	}
	return d.Glyph(row, col)
}

func cellStyle(t *sceneview.Table, base lipgloss.Style, row int, col sceneview.Columns) lipgloss.Style {
	if col != sceneview.ColorColumn {
		return base
	}
	v, _ := t.Data(row, col, sceneview.DecorationRole)
	return base.Foreground(lipgloss.Color(colors.AsHex(v.(color.RGBA))))
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(Render(m.Table, m.Delegate))
	sb.WriteByte('\n')
	bb := m.scene().BBox()
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%d entries, bounds %v", m.scene().Len(), bb)))
	sb.WriteByte('\n')
	if m.status != "" {
		if m.statusErr {
			sb.WriteString(errorStyle.Render(m.status))
		} else {
			sb.WriteString(statusStyle.Render(m.status))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(helpStyle.Render("↑/↓ select · space activate · m mode · c color · d duplicate · x erase · r reload · q quit"))
	return sb.String()
}
