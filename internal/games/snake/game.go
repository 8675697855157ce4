// Package snake implements the snake state machine: movement, collisions,
// food and obstacle placement, level progression and the power-up countdown.
package snake

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/input"
	"github.com/vovakirdan/joysnake/internal/spawn"
)

// Mode is the state of the game lifecycle.
type Mode int

const (
	ModeMenu Mode = iota
	ModeRunning
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// FoodVariant distinguishes normal food from power food.
type FoodVariant int

const (
	FoodNormal FoodVariant = iota
	FoodPower
)

func (v FoodVariant) String() string {
	if v == FoodPower {
		return "power"
	}
	return "normal"
}

// Food is the single active food item.
type Food struct {
	Cell    core.Cell
	Variant FoodVariant
}

// StepResult is returned by Step.
type StepResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Game owns all per-run state plus the high score.
type Game struct {
	rules Rules
	gen   spawn.CellGenerator
	rng   *rand.Rand // Food variant rolls

	mode Mode
	tick uint64

	// Per-run state
	snake      []core.Cell // Head at index 0
	direction  core.Direction
	food       Food
	hasFood    bool // False only when the board had no free cell left
	obstacles  []core.Cell
	score      int
	level      int
	powerTicks int // Remaining power-up ticks, 0 when inactive
	reason     GameOverReason

	highScore int

	pending []Event // Emitted outside Step, flushed by the next Step
}

// New creates a game in the menu. A nil rng is seeded from the clock and a
// nil gen draws uniformly from rng.
func New(rules Rules, gen spawn.CellGenerator, rng *rand.Rand, highScore int) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if gen == nil {
		gen = spawn.NewRandGenerator(rng)
	}
	g := &Game{
		rules:     rules,
		gen:       gen,
		rng:       rng,
		highScore: max(0, highScore),
	}
	g.Reset()
	return g
}

// Reset puts every per-run value back to its initial state and returns to the
// menu. The high score is kept.
func (g *Game) Reset() {
	g.resetRun()
	g.mode = ModeMenu
	g.pending = nil
}

func (g *Game) resetRun() {
	g.tick = 0
	g.snake = []core.Cell{g.rules.Grid.Center()}
	g.direction = core.None
	g.obstacles = nil
	g.score = 0
	g.level = 1
	g.powerTicks = 0
	g.reason = ReasonNone
	g.hasFood = false
	g.placeFood(FoodNormal)
}

// Start leaves the menu. The snake stays still until the first direction.
func (g *Game) Start() {
	if g.mode != ModeMenu {
		return
	}
	g.mode = ModeRunning
	g.emit(StartedEvent{Direction: g.direction})
}

// Restart begins a fresh run after a game over.
func (g *Game) Restart() {
	if g.mode != ModeGameOver {
		return
	}
	g.resetRun()
	g.mode = ModeRunning
	g.emit(RestartedEvent{})
}

// TogglePause switches between Running and Paused. Other modes ignore it.
func (g *Game) TogglePause() {
	switch g.mode {
	case ModeRunning:
		g.mode = ModePaused
		g.emit(PausedEvent{})
	case ModePaused:
		g.mode = ModeRunning
		g.emit(ResumedEvent{})
	}
}

// Step advances the game by one tick, polling src as the current mode needs.
func (g *Game) Step(src input.Source) StepResult {
	g.tick++

	switch g.mode {
	case ModeMenu:
		src.PollPauseToggle() // Dropped so a press in the menu does not pause the run
		if dir := src.PollDirection(core.None); !dir.IsZero() {
			g.direction = dir
			g.Start()
		}
	case ModeGameOver:
		// Input is drained and ignored until Restart.
		src.PollPauseToggle()
		src.PollDirection(g.direction)
	case ModePaused:
		if src.PollPauseToggle() {
			g.TogglePause()
		}
	case ModeRunning:
		if src.PollPauseToggle() {
			g.TogglePause()
			break
		}
		g.advance(src)
	}

	events := g.pending
	g.pending = nil
	return StepResult{Events: events, Snapshot: g.Snapshot()}
}

// advance performs one Running tick.
func (g *Game) advance(src input.Source) {
	if cand := src.PollDirection(g.direction); !cand.IsZero() && cand != g.direction.Opposite() {
		g.direction = cand
	}
	if g.direction.IsZero() {
		return
	}

	// A power-up (re)activated this tick keeps its full duration until the next.
	counting := g.PowerActive()

	head := g.snake[0].Add(g.direction)
	if !g.rules.Grid.InBounds(head) {
		g.endRun(ReasonWallCollision)
		return
	}
	if !g.PowerActive() {
		if slices.Contains(g.snake, head) {
			g.endRun(ReasonSelfCollision)
			return
		}
		if slices.Contains(g.obstacles, head) {
			g.endRun(ReasonObstacleCollision)
			return
		}
	}

	g.snake = slices.Insert(g.snake, 0, head)

	if g.hasFood && head == g.food.Cell {
		if g.eat() {
			counting = false
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.updateLevel()

	if counting {
		g.powerTicks--
		if g.powerTicks <= 0 {
			g.powerTicks = 0
			g.emit(PowerUpExpiredEvent{})
		}
	}
}

// eat consumes the food under the head and reports whether it was power food.
// The snake keeps its tail this tick.
func (g *Game) eat() bool {
	eaten := g.food
	g.score++
	g.emit(FoodEatenEvent{Cell: eaten.Cell, Variant: eaten.Variant, Score: g.score})

	if g.score > g.highScore {
		g.highScore = g.score
		g.emit(HighScoreEvent{Score: g.score})
	}

	if eaten.Variant == FoodPower {
		g.powerTicks = g.rules.PowerDurationTicks
		g.emit(PowerUpActivatedEvent{Ticks: g.powerTicks})
	}

	variant := FoodNormal
	if g.rng.Float64() < g.rules.PowerChance {
		variant = FoodPower
	}
	g.placeFood(variant)
	return eaten.Variant == FoodPower
}

// updateLevel recomputes the level and adds obstacles on level-up. Reaching
// level N adds N obstacles.
func (g *Game) updateLevel() {
	level := g.rules.LevelFor(g.score)
	if level <= g.level {
		return
	}
	g.level = level

	added := 0
	for range level {
		occ := g.occupancy()
		if g.hasFood {
			occ.Put(g.food.Cell)
		}
		c, err := spawn.Place(g.rules.Grid, occ, g.gen)
		if err != nil {
			break
		}
		g.obstacles = append(g.obstacles, c)
		added++
	}
	g.emit(LevelUpEvent{Level: level, NewObstacles: added})
}

func (g *Game) placeFood(variant FoodVariant) {
	c, err := spawn.Place(g.rules.Grid, g.occupancy(), g.gen)
	if err != nil {
		g.hasFood = false
		return
	}
	g.food = Food{Cell: c, Variant: variant}
	g.hasFood = true
}

func (g *Game) occupancy() spawn.Occupancy {
	return spawn.NewOccupancy(g.snake, g.obstacles)
}

func (g *Game) endRun(reason GameOverReason) {
	g.mode = ModeGameOver
	g.reason = reason
	g.emit(GameOverEvent{Reason: reason, Score: g.score})
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

// TickRate returns the ticks per second the driver should run the game at.
func (g *Game) TickRate() float64 {
	rate := g.rules.BaseTickRate + float64(g.level-1)*g.rules.LevelTickIncrement
	if g.PowerActive() {
		rate += g.rules.PowerTickBoost
	}
	return rate
}

// PowerActive reports whether the power-up is running.
func (g *Game) PowerActive() bool {
	return g.powerTicks > 0
}

// Mode returns the current lifecycle mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// HighScore returns the best score seen, including the initial value.
func (g *Game) HighScore() int {
	return g.highScore
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Mode: %s, Score: %d, Level: %d\n", g.tick, g.mode, g.score, g.level)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: %s\n", len(g.snake), g.direction, g.snake[0])
	fmt.Fprintf(&b, "Food: %s (%s), Obstacles: %d, Power ticks: %d\n", g.food.Cell, g.food.Variant, len(g.obstacles), g.powerTicks)
	return b.String()
}
