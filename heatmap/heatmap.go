// SPDX-License-Identifier: MIT

// Package heatmap draws a numeric matrix.Matrix as a plot heat map.
//
// Grid adapts *matrix.Matrix[float64] to plotter.GridXYZ:
//
//	Dims() -> (width, height)    // columns first, as gonum/plot expects
//	Z(c, r) -> Get(r, c)
//	X(c) -> c, Y(r) -> r         // unit cells; row 0 is the bottom row
//
// Plot builds a *plot.Plot and Save writes it to a file whose extension
// selects the format (png, svg, pdf, ...).
package heatmap

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/colmat/matrix"
)

// Sentinel errors for heatmap operations.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("heatmap: nil matrix")
	// ErrEmptyGrid indicates the matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("heatmap: matrix must have at least one row and one column")
)

// DefaultColors is the number of palette steps used by Plot.
const DefaultColors = 12

// Grid exposes a float64 matrix as a plotter.GridXYZ.
type Grid struct {
	m *matrix.Matrix[float64]
}

var _ plotter.GridXYZ = (*Grid)(nil)

// NewGrid wraps m. The matrix is immutable, so no copy is taken.
func NewGrid(m *matrix.Matrix[float64]) (*Grid, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("heatmap.NewGrid: %dx%d: %w", m.Height(), m.Width(), ErrEmptyGrid)
	}

	return &Grid{m: m}, nil
}

// Dims returns (columns, rows).
func (g *Grid) Dims() (c, r int) { return g.m.Width(), g.m.Height() }

// Z returns the value at column c, row r.
func (g *Grid) Z(c, r int) float64 {
	v, _ := g.m.Get(r, c)
	return v
}

// X returns the coordinate of column c.
func (g *Grid) X(c int) float64 { return float64(c) }

// Y returns the coordinate of row r.
func (g *Grid) Y(r int) float64 { return float64(r) }

// Range returns the minimum and maximum element.
func (g *Grid) Range() (lo, hi float64) {
	first := true
	g.m.Do(func(_, _ int, v float64) bool {
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
		return true
	})

	return lo, hi
}

// Plot builds a heat map plot of m titled title.
func Plot(m *matrix.Matrix[float64], title string) (*plot.Plot, error) {
	g, err := NewGrid(m)
	if err != nil {
		return nil, err
	}

	h := plotter.NewHeatMap(g, palette.Heat(DefaultColors, 1))
	// A constant matrix has no spread; widen it so the palette scale is finite.
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(h)

	return p, nil
}

// Save renders m to path with the given size in inches.
func Save(m *matrix.Matrix[float64], title, path string, widthIn, heightIn float64) error {
	p, err := Plot(m, title)
	if err != nil {
		return err
	}
	if err = p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("heatmap.Save %s: %w", path, err)
	}

	return nil
}
