// Package spawn places food and obstacles on free cells of the board.
package spawn

import (
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/joysnake/internal/core"
)

// maxAttempts bounds rejection sampling before falling back to a scan.
const maxAttempts = 64

// ErrNoFreeCell is returned when every cell of the board is occupied.
var ErrNoFreeCell = errors.New("spawn: no free cell")

// Occupancy is the set of cells a new entity must avoid.
type Occupancy = mapset.Set[core.Cell]

// NewOccupancy builds an occupancy set from any number of cell lists.
func NewOccupancy(lists ...[]core.Cell) Occupancy {
	occ := mapset.New[core.Cell]()
	for _, cells := range lists {
		for _, c := range cells {
			occ.Put(c)
		}
	}
	return occ
}

// CellGenerator produces candidate cells for placement.
type CellGenerator interface {
	NextCell(g core.Grid) core.Cell
}

// RandGenerator draws cells uniformly from the whole grid.
type RandGenerator struct {
	rng *rand.Rand
}

// NewRandGenerator wraps rng. A nil rng is seeded from the global source.
func NewRandGenerator(rng *rand.Rand) *RandGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandGenerator{rng: rng}
}

// NextCell returns a uniformly random cell of g.
func (r *RandGenerator) NextCell(g core.Grid) core.Cell {
	return core.Cell{X: r.rng.Intn(g.Cols()), Y: r.rng.Intn(g.Rows())}
}

// SequenceGenerator replays a fixed list of cells, cycling when exhausted.
type SequenceGenerator struct {
	cells []core.Cell
	next  int
}

// NewSequenceGenerator creates a generator that yields cells in order.
func NewSequenceGenerator(cells ...core.Cell) *SequenceGenerator {
	return &SequenceGenerator{cells: cells}
}

// NextCell returns the next cell of the sequence, or the origin when empty.
func (s *SequenceGenerator) NextCell(_ core.Grid) core.Cell {
	if len(s.cells) == 0 {
		return core.Cell{}
	}
	c := s.cells[s.next%len(s.cells)]
	s.next++
	return c
}

// Place returns a free in-bounds cell. It samples gen first and falls back to
// a deterministic row-major scan, so it terminates even on a nearly full board.
func Place(g core.Grid, occupied Occupancy, gen CellGenerator) (core.Cell, error) {
	for range maxAttempts {
		c := gen.NextCell(g)
		if g.InBounds(c) && !occupied.Has(c) {
			return c, nil
		}
	}

	free := FreeCells(g, occupied)
	if len(free) == 0 {
		return core.Cell{}, ErrNoFreeCell
	}
	return free[0], nil
}

// FreeCells lists every in-bounds cell not in occupied, row by row.
func FreeCells(g core.Grid, occupied Occupancy) []core.Cell {
	free := make([]core.Cell, 0, max(0, g.CellCount()-occupied.Size()))
	for y := range g.Rows() {
		for x := range g.Cols() {
			c := core.Cell{X: x, Y: y}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
