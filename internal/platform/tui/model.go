package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake"
	"github.com/vovakirdan/joysnake/internal/highscore"
	"github.com/vovakirdan/joysnake/internal/input"
)

// Options configures the driver.
type Options struct {
	Timing       config.TimingConfig
	Presentation config.PresentationConfig
	Runtime      core.RuntimeConfig
	Logger       *log.Logger
	BellOut      io.Writer // Defaults to os.Stderr
	AltScreen    bool      // Start in the alternate screen
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game      *snake.Game
	src       input.Source
	keyboard  input.KeyPresser // Nil when steering comes from the device
	tracker   *highscore.Tracker
	logger    *log.Logger
	screen    *core.Screen
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	pending   core.InputFrame
	particles *Particles
	bell      *Bell
	timing    config.TimingConfig
	showGrid  bool
	altScreen bool
	snap      snake.Snapshot
	quitting  bool
}

// NewModel creates the driver for game, polling src and persisting new high
// scores through tracker.
func NewModel(game *snake.Game, src input.Source, tracker *highscore.Tracker, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bellOut := opts.BellOut
	if bellOut == nil {
		bellOut = os.Stderr
	}
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt = core.DefaultConfig()
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:      game,
		src:       src,
		tracker:   tracker,
		logger:    logger,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		pending:   core.NewInputFrame(),
		particles: NewParticles(game.Rules().Grid, opts.Presentation.Particles, nil),
		bell:      NewBell(bellOut, opts.Presentation.Bell),
		timing:    opts.Timing,
		showGrid:  opts.Presentation.ShowGrid,
		altScreen: opts.AltScreen,
		snap:      game.Snapshot(),
	}
	if kp, ok := src.(input.KeyPresser); ok {
		m.keyboard = kp
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records intents for the next tick. Quit is handled at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionPause && m.keyboard != nil:
		// The keyboard source reports its own pause toggle to the game.
		m.keyboard.Press(msg.String())

	case action != core.ActionNone:
		m.pending.Set(action)

	case m.keyMapper.IsSteering(msg) && m.keyboard != nil:
		m.keyboard.Press(msg.String())
	}

	return m, nil
}

// handleTick applies pending intents, steps the game once and schedules the
// next tick at the rate of the resulting mode.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.pending.Has(core.ActionToggleGrid) {
		m.showGrid = !m.showGrid
	}
	if m.pending.Has(core.ActionToggleFullscreen) {
		m.altScreen = !m.altScreen
		if m.altScreen {
			cmds = append(cmds, tea.EnterAltScreen)
		} else {
			cmds = append(cmds, tea.ExitAltScreen)
		}
	}
	if m.pending.Has(core.ActionStart) {
		m.game.Start()
	}
	if m.pending.Has(core.ActionRestart) {
		m.game.Restart()
	}
	if m.pending.Has(core.ActionPause) {
		m.game.TogglePause()
	}
	m.pending.Clear()

	dt := 1 / m.tickRate()
	res := m.game.Step(m.src)
	m.snap = res.Snapshot
	m.handleEvents(res.Events)
	m.particles.Update(dt)

	cmds = append(cmds, tickCmd(m.tickRate()))
	return m, tea.Batch(cmds...)
}

// handleEvents routes game events to effects, persistence and the log.
func (m Model) handleEvents(events []snake.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case snake.StartedEvent:
			m.logger.Info("run started", "source", m.src.Name(), "direction", e.Direction)
		case snake.RestartedEvent:
			m.particles.Clear()
			m.logger.Info("run restarted")
		case snake.FoodEatenEvent:
			m.particles.Burst(e.Cell)
			m.bell.Ring()
			m.logger.Debug("food eaten", "cell", e.Cell, "variant", e.Variant, "score", e.Score)
		case snake.PowerUpActivatedEvent:
			m.bell.Ring()
			m.logger.Info("power-up active", "ticks", e.Ticks)
		case snake.PowerUpExpiredEvent:
			m.logger.Info("power-up expired")
		case snake.LevelUpEvent:
			m.logger.Info("level up", "level", e.Level, "obstacles", e.NewObstacles)
		case snake.HighScoreEvent:
			m.offer(e.Score)
		case snake.GameOverEvent:
			m.bell.Ring()
			m.logger.Info("game over", "reason", e.Reason, "score", e.Score)
		case snake.PausedEvent:
			m.logger.Debug("paused")
		case snake.ResumedEvent:
			m.logger.Debug("resumed")
		}
	}
}

func (m Model) offer(score int) {
	if m.tracker == nil {
		return
	}
	if _, err := m.tracker.Offer(score); err != nil {
		m.logger.Error("cannot save high score", "score", score, "error", err)
	}
}

// shutdown persists the high score and releases the input source.
func (m Model) shutdown() {
	m.offer(m.game.HighScore())
	if err := m.src.Close(); err != nil {
		m.logger.Warn("cannot close input source", "source", m.src.Name(), "error", err)
	}
	m.logger.Info("quit", "high_score", m.game.HighScore())
}

// tickRate returns the refresh rate of the current mode.
func (m Model) tickRate() float64 {
	switch m.game.Mode() {
	case snake.ModeRunning:
		return m.game.TickRate()
	case snake.ModePaused:
		return m.timing.PausedTickRate
	default:
		return m.timing.IdleTickRate
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Rules().Grid, m.snap, View{
		ShowGrid:  m.showGrid,
		Particles: m.particles.Cells(),
		Source:    m.src.Name(),
	})
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *snake.Game, src input.Source, tracker *highscore.Tracker, opts Options) error {
	model := NewModel(game, src, tracker, opts)

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, progOpts...)
	_, err := p.Run()
	return err
}
