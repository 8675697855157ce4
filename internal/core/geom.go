// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is one discrete grid square, addressed by column and row.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes the board in pixel space. CellSize must evenly divide both
// dimensions; Validate reports when it does not.
type Grid struct {
	Width    int // Board width in pixels
	Height   int // Board height in pixels
	CellSize int // Side of one cell in pixels
}

// NewGrid creates a grid with the given pixel dimensions and cell size.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Validate checks that the grid is non-empty and evenly divided into cells.
func (g Grid) Validate() error {
	if g.CellSize <= 0 {
		return fmt.Errorf("core: cell size must be positive, got %d", g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("core: board must be non-empty, got %dx%d", g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return fmt.Errorf("core: cell size %d does not divide board %dx%d", g.CellSize, g.Width, g.Height)
	}
	return nil
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// CellCount returns the total number of cells on the board.
func (g Grid) CellCount() int {
	return g.Cols() * g.Rows()
}

// Bounds returns the board in cell coordinates.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.Cols(), g.Rows())
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// ToCell converts a pixel position to the cell containing it.
// Negative pixels map to negative cells, so InBounds still rejects them.
func (g Grid) ToCell(px, py int) Cell {
	return Cell{X: floorDiv(px, g.CellSize), Y: floorDiv(py, g.CellSize)}
}

// ToPixel returns the pixel rectangle covered by a cell.
func (g Grid) ToPixel(c Cell) Rect {
	return NewRect(c.X*g.CellSize, c.Y*g.CellSize, g.CellSize, g.CellSize)
}

// Center returns the cell containing the board's pixel center.
func (g Grid) Center() Cell {
	return g.ToCell(g.Width/2, g.Height/2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
