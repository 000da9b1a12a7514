// SPDX-License-Identifier: MIT

// Package pretty renders a matrix.Matrix as a styled terminal table.
//
// Layout:
//   - Header row holds column indices, the first column holds row indices.
//   - Cells are formatted with %v and right-aligned.
//   - A matrix without elements renders as its shape, e.g. "(0x3)".
//
// Colors degrade to plain text when the output is not a terminal
// (lipgloss detects the color profile).
package pretty

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/colmat/matrix"
)

// Style groups the lipgloss styles used by RenderWith.
type Style struct {
	Header lipgloss.Style  // column index header
	Index  lipgloss.Style  // row index column
	Cell   lipgloss.Style  // element cells
	Border lipgloss.Border // table border set
}

// DefaultStyle returns the styles used by Render.
func DefaultStyle() Style {
	return Style{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1),
		Index:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")).Padding(0, 1).Align(lipgloss.Right),
		Border: lipgloss.RoundedBorder(),
	}
}

// Render draws m with DefaultStyle.
func Render[T any](m *matrix.Matrix[T]) string {
	return RenderWith(m, DefaultStyle())
}

// RenderWith draws m with the given styles. A nil or element-less matrix
// renders as "(rows x cols)" without a table.
func RenderWith[T any](m *matrix.Matrix[T], st Style) string {
	if m == nil {
		return shape(0, 0)
	}
	rows, cols := m.Shape()
	if m.IsEmpty() {
		return shape(rows, cols)
	}

	headers := make([]string, cols+1)
	for j := 0; j < cols; j++ {
		headers[j+1] = strconv.Itoa(j)
	}

	t := table.New().
		Border(st.Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case col == 0:
				return st.Index
			default:
				return st.Cell
			}
		})

	for i := 0; i < rows; i++ {
		line := make([]string, 0, cols+1)
		line = append(line, strconv.Itoa(i))
		vals, _ := m.Row(i)
		for _, v := range vals {
			line = append(line, fmt.Sprint(v))
		}
		t.Row(line...)
	}

	return t.Render()
}

func shape(rows, cols int) string {
	return fmt.Sprintf("(%dx%d)", rows, cols)
}
