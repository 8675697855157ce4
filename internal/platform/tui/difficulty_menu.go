package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
)

// difficultyChoice is one row of the difficulty picker.
type difficultyChoice struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyChoices = []difficultyChoice{
	{config.DifficultyEasy, "Easy    - slow start, frequent power food"},
	{config.DifficultyNormal, "Normal  - as configured"},
	{config.DifficultyHard, "Hard    - fast start, rare power food"},
}

// menuKeys are the bindings of the difficulty picker.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// DifficultyModel lets the player choose a difficulty preset before a run.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     menuKeys
	selected *config.DifficultyPreset
	quitting bool
}

// NewDifficultyModel creates the picker with the cursor on Normal.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor: 1,
		width:  width,
		height: height,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		preset := difficultyChoices[m.cursor].preset
		m.selected = &preset
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.center(menuTitleStyle.Render("J O Y S N A K E")))
	b.WriteString("\n\n")
	b.WriteString(m.center("Select difficulty:"))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		line := "  " + c.label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + c.label)
		}
		b.WriteString(m.center(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.center(helpStyle.Render("Enter: Select  |  Q: Quit")))
	return b.String()
}

func (m DifficultyModel) center(s string) string {
	return lipgloss.PlaceHorizontal(max(m.width, lipgloss.Width(s)), lipgloss.Center, s)
}

// Selected returns the chosen preset, or false while choosing or after quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.selected == nil {
		return "", false
	}
	return *m.selected, true
}

// RunDifficultyPicker shows the picker and returns the chosen preset. ok is
// false when the player quit without choosing.
func RunDifficultyPicker(rt core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(rt.ScreenW, rt.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("difficulty picker: %w", err)
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
