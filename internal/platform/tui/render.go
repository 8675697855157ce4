package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const (
	cellWidth = 2 // Terminal columns per board cell
	hudHeight = 1
	title     = "JOYSNAKE"
)

// View holds presentation state that is not part of the game snapshot.
type View struct {
	ShowGrid  bool
	Particles []core.Cell
	Source    string // Input source name for the HUD
}

// Layout places the board on the screen.
type Layout struct {
	Box      core.Rect // Board border in screen coordinates
	TooSmall bool
}

// NewLayout centers a board of grid under the HUD of a w x h screen.
func NewLayout(grid core.Grid, w, h int) Layout {
	boxW := grid.Cols()*cellWidth + 2
	boxH := grid.Rows() + 2
	if w < boxW || h < boxH+hudHeight {
		return Layout{TooSmall: true}
	}
	return Layout{Box: core.NewRect((w-boxW)/2, hudHeight, boxW, boxH)}
}

// cellPos returns the screen position of the left column of cell c.
func (l Layout) cellPos(c core.Cell) (int, int) {
	return l.Box.X + 1 + c.X*cellWidth, l.Box.Y + 1 + c.Y
}

func (l Layout) drawCell(dst *core.Screen, c core.Cell, glyph string, color core.Color) {
	x, y := l.cellPos(c)
	dst.DrawTextColor(x, y, glyph, color)
}

// DrawFrame draws the HUD, the board and the overlay of the current mode.
func DrawFrame(dst *core.Screen, grid core.Grid, snap snake.Snapshot, v View) {
	dst.Clear()

	layout := NewLayout(grid, dst.Width(), dst.Height())
	if layout.TooSmall {
		drawTooSmall(dst, grid)
		return
	}

	drawHUD(dst, snap, v)
	dst.DrawBox(layout.Box, core.ColorGray)

	if v.ShowGrid {
		for y := range grid.Rows() {
			for x := range grid.Cols() {
				layout.drawCell(dst, core.Cell{X: x, Y: y}, "· ", core.ColorGray)
			}
		}
	}

	for _, c := range v.Particles {
		layout.drawCell(dst, c, "* ", core.ColorYellow)
	}

	for _, o := range snap.Obstacles {
		layout.drawCell(dst, o, "▓▓", core.ColorGray)
	}

	if snap.HasFood {
		color := core.ColorBrightYellow
		if snap.Food.Variant == snake.FoodPower {
			color = core.ColorBrightBlue
		}
		layout.drawCell(dst, snap.Food.Cell, "()", color)
	}

	drawSnake(dst, layout, snap)

	switch snap.Mode {
	case snake.ModeMenu:
		drawOverlay(dst, core.ColorBrightGreen,
			title,
			"",
			"Use the joystick (or arrows) to move",
			"Eat yellow food to grow. Avoid edges, rocks and yourself.",
			"Blue food is a power-up: faster and unbreakable.",
			"",
			"Press SPACE to start",
		)
	case snake.ModePaused:
		drawOverlay(dst, core.ColorWhite, "Paused", "", "Press P to continue")
	case snake.ModeGameOver:
		drawOverlay(dst, core.ColorRed,
			strings.TrimSpace("Game Over! "+snap.Reason.Message()),
			fmt.Sprintf("Final Score: %d", snap.Score),
			"",
			"Press R to Restart",
		)
	}
}

// headGlyphs shows the heading of the snake.
var headGlyphs = map[core.Direction]string{
	core.None:  "●●",
	core.Up:    "▲▲",
	core.Down:  "▼▼",
	core.Left:  "◀█",
	core.Right: "█▶",
}

func drawSnake(dst *core.Screen, layout Layout, snap snake.Snapshot) {
	body, head := core.ColorGreen, core.ColorBrightGreen
	if snap.PowerActive() {
		body, head = core.ColorYellow, core.ColorBrightYellow
	}

	// Tail first so the head wins where segments overlap.
	for i := len(snap.Snake) - 1; i > 0; i-- {
		layout.drawCell(dst, snap.Snake[i], "██", body)
	}
	layout.drawCell(dst, snap.Head(), headGlyphs[snap.Direction], head)
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, v View) {
	hud := fmt.Sprintf(" %s  Score: %d | High: %d | Level: %d", title, snap.Score, snap.HighScore, snap.Level)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	right := fmt.Sprintf("[%s] ", v.Source)
	if snap.PowerActive() {
		right = fmt.Sprintf("POWER-UP %d  ", snap.PowerTicks) + right
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightBlue)
}

func drawTooSmall(dst *core.Screen, grid core.Grid) {
	need := fmt.Sprintf("Need %dx%d", grid.Cols()*cellWidth+2, grid.Rows()+2+hudHeight+1)
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(mid, need, core.ColorDefault)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorGray)
}

// drawOverlay draws a centered box with the given lines.
func drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
