package tui

import (
	"io"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/joysnake/internal/core"
)

const (
	particleSpeed   = 5  // Max pixels per frame in each axis
	particleMinLife = 10 // Frames
	particleMaxLife = 20 // Frames
	particleFPS     = 30 // Frames per second of particle time
)

// particle moves from the food center in pixel space; x and y are tweened
// independently.
type particle struct {
	x, y *gween.Tween
	px   float32
	py   float32
	done bool
}

// Particles is the burst drawn when food is eaten. Positions are kept in
// pixels and mapped to cells only for drawing.
type Particles struct {
	grid     core.Grid
	perBurst int
	rng      *rand.Rand
	items    []*particle
}

// NewParticles creates an emitter that spawns perBurst particles per burst.
// perBurst 0 disables bursts.
func NewParticles(grid core.Grid, perBurst int, rng *rand.Rand) *Particles {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Particles{grid: grid, perBurst: perBurst, rng: rng}
}

// Burst spawns particles at the pixel center of c.
func (p *Particles) Burst(c core.Cell) {
	cx, cy := p.grid.ToPixel(c).Center()
	for range p.perBurst {
		life := particleMinLife + p.rng.Intn(particleMaxLife-particleMinLife+1)
		vx := p.rng.Intn(2*particleSpeed+1) - particleSpeed
		vy := p.rng.Intn(2*particleSpeed+1) - particleSpeed
		secs := float32(life) / particleFPS

		p.items = append(p.items, &particle{
			x:  gween.New(float32(cx), float32(cx+vx*life), secs, ease.OutQuad),
			y:  gween.New(float32(cy), float32(cy+vy*life), secs, ease.OutQuad),
			px: float32(cx),
			py: float32(cy),
		})
	}
}

// Update advances every particle by dt seconds and drops finished ones.
func (p *Particles) Update(dt float64) {
	alive := p.items[:0]
	for _, it := range p.items {
		var xDone, yDone bool
		it.px, xDone = it.x.Update(float32(dt))
		it.py, yDone = it.y.Update(float32(dt))
		if xDone && yDone {
			continue
		}
		alive = append(alive, it)
	}
	clear(p.items[len(alive):])
	p.items = alive
}

// Cells returns the on-board cells currently covered by particles.
func (p *Particles) Cells() []core.Cell {
	cells := make([]core.Cell, 0, len(p.items))
	for _, it := range p.items {
		c := p.grid.ToCell(int(it.px), int(it.py))
		if p.grid.InBounds(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Clear drops every particle.
func (p *Particles) Clear() {
	p.items = nil
}

// Bell rings the terminal bell. A nil writer or a disabled bell is silent.
type Bell struct {
	w       io.Writer
	enabled bool
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer, enabled bool) *Bell {
	return &Bell{w: w, enabled: enabled && w != nil}
}

// Ring writes the BEL control character.
func (b *Bell) Ring() {
	if !b.enabled {
		return
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.enabled = false
	}
}
