// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/scene"
	"cogentcore.org/retained/units"
)

// Grid is an element that lays out its cells in rows and columns of
// equal size, filling the rows first. Cells are added with
// [Grid.AddCell] and get a [GridCell] view model.
type Grid struct {
	scene.Element

	// Cols is the number of columns. It defaults to 1.
	Cols int

	// Rows is the number of rows. Zero uses as many rows as the
	// cells need.
	Rows int

	// Gap is the space between cells, on both axes.
	Gap units.Value
}

// GridCell is the view model of a cell of a [Grid].
type GridCell struct {

	// Index is the index of the cell among the children of the grid.
	Index int

	// Row and Col are the position of the cell in the grid.
	Row, Col int
}

// NewGrid returns a new grid with the given number of columns.
func NewGrid(cols int) *Grid {
	g := &Grid{Cols: cols}
	g.InitElement(g)
	g.SetAlwaysRearrangeDescendants(true)
	return g
}

// SetCols sets [Grid.Cols].
func (g *Grid) SetCols(cols int) *Grid {
	g.Cols = cols
	return g
}

// SetRows sets [Grid.Rows].
func (g *Grid) SetRows(rows int) *Grid {
	g.Rows = rows
	return g
}

// SetGap sets [Grid.Gap].
func (g *Grid) SetGap(gap units.Value) *Grid {
	g.Gap = gap
	return g
}

// AddCell adds the node as the next cell of the grid. The cell gets
// its [GridCell] view model before every arrange, and is placed in
// its cell.
func (g *Grid) AddCell(cell scene.Node) *Grid {
	g.AddChild(cell)
	e := cell.AsElement()
	e.SetViewModelCallback(func(e *scene.Element) {
		i := e.IndexInParent()
		cols := g.cols()
		e.SetViewModel(GridCell{Index: i, Row: i / cols, Col: i % cols})
	})
	e.SetArrangeCallback(func(e *scene.Element) {
		gc, ok := e.ViewModel().(GridCell)
		if !ok {
			e.FillParent()
			return
		}
		e.SetBoundsDots(g.CellBounds(gc.Row, gc.Col))
	})
	return g
}

func (g *Grid) cols() int {
	return max(g.Cols, 1)
}

// NumRows returns the number of rows, which is [Grid.Rows] if set.
func (g *Grid) NumRows() int {
	if g.Rows > 0 {
		return g.Rows
	}
	cols := g.cols()
	return max((g.NumChildren()+cols-1)/cols, 1)
}

// CellBounds returns the bounds of the cell at the given row and column.
func (g *Grid) CellBounds(row, col int) math32.Box2 {
	b := g.Bounds()
	cols, rows := float32(g.cols()), float32(g.NumRows())
	gx := g.Units().HDots(g.Gap)
	gy := g.Units().VDots(g.Gap)
	cw := (b.Size().X - gx*(cols-1)) / cols
	ch := (b.Size().Y - gy*(rows-1)) / rows
	x := b.Min.X + float32(col)*(cw+gx)
	y := b.Min.Y + float32(row)*(ch+gy)
	return math32.B2(x, y, x+cw, y+ch)
}
