package spawn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/joysnake/internal/core"
)

func TestPlaceNeverReturnsOccupied(t *testing.T) {
	g := core.NewGrid(200, 100, 20) // 10x5 cells
	rng := rand.New(rand.NewSource(7))
	gen := NewRandGenerator(rng)

	// Occupy a growing prefix of the board, up to all but one cell.
	all := FreeCells(g, NewOccupancy())
	for n := 0; n < len(all); n++ {
		occ := NewOccupancy(all[:n])
		for range 20 {
			c, err := Place(g, occ, gen)
			if err != nil {
				t.Fatalf("Place() with %d occupied failed: %v", n, err)
			}
			if occ.Has(c) {
				t.Fatalf("Place() returned occupied cell %v with %d occupied", c, n)
			}
			if !g.InBounds(c) {
				t.Fatalf("Place() returned out of bounds cell %v", c)
			}
		}
	}
}

func TestPlaceFullBoard(t *testing.T) {
	g := core.NewGrid(40, 40, 20)
	occ := NewOccupancy(FreeCells(g, NewOccupancy()))

	_, err := Place(g, occ, NewRandGenerator(nil))
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Place() on full board error = %v, expected ErrNoFreeCell", err)
	}
}

func TestPlaceFallsBackToScan(t *testing.T) {
	g := core.NewGrid(60, 20, 20) // 3x1 cells
	occ := NewOccupancy([]core.Cell{{0, 0}, {1, 0}})

	// Generator only ever proposes an occupied cell.
	gen := NewSequenceGenerator(core.Cell{X: 0, Y: 0})
	c, err := Place(g, occ, gen)
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if c != (core.Cell{X: 2, Y: 0}) {
		t.Errorf("Place() = %v, expected scan result (2,0)", c)
	}
}

func TestPlaceRejectsOutOfBounds(t *testing.T) {
	g := core.NewGrid(100, 100, 20)
	gen := NewSequenceGenerator(core.Cell{X: -1, Y: 0}, core.Cell{X: 9, Y: 9}, core.Cell{X: 3, Y: 4})

	c, err := Place(g, NewOccupancy(), gen)
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if c != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("Place() = %v, expected (3,4)", c)
	}
}

func TestSequenceGeneratorCycles(t *testing.T) {
	g := core.NewGrid(100, 100, 20)
	gen := NewSequenceGenerator(core.Cell{X: 1, Y: 1}, core.Cell{X: 2, Y: 2})

	expected := []core.Cell{{1, 1}, {2, 2}, {1, 1}}
	for i, want := range expected {
		if got := gen.NextCell(g); got != want {
			t.Errorf("NextCell() #%d = %v, expected %v", i, got, want)
		}
	}

	empty := NewSequenceGenerator()
	if got := empty.NextCell(g); got != (core.Cell{}) {
		t.Errorf("empty NextCell() = %v, expected origin", got)
	}
}

func TestFreeCells(t *testing.T) {
	g := core.NewGrid(40, 40, 20)
	free := FreeCells(g, NewOccupancy([]core.Cell{{0, 0}}, []core.Cell{{1, 1}}))

	if len(free) != 2 {
		t.Fatalf("FreeCells() len = %d, expected 2", len(free))
	}
	if free[0] != (core.Cell{X: 1, Y: 0}) || free[1] != (core.Cell{X: 0, Y: 1}) {
		t.Errorf("FreeCells() = %v, expected [(1,0) (0,1)]", free)
	}
}
