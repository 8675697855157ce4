package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/joysnake/internal/config"
)

func pick(m DifficultyModel, msgs ...tea.KeyMsg) (DifficultyModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(DifficultyModel)
	}
	return m, cmd
}

func TestDifficultyModelSelect(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"default is normal", []tea.KeyMsg{enter}, config.DifficultyNormal},
		{"down to hard", []tea.KeyMsg{down, enter}, config.DifficultyHard},
		{"up to easy", []tea.KeyMsg{up, enter}, config.DifficultyEasy},
		{"cursor stops at top", []tea.KeyMsg{up, up, up, enter}, config.DifficultyEasy},
		{"cursor stops at bottom", []tea.KeyMsg{down, down, down, enter}, config.DifficultyHard},
		{"wasd", []tea.KeyMsg{runes("s"), enter}, config.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := pick(NewDifficultyModel(80, 24), tt.keys...)
			got, ok := m.Selected()
			if !ok {
				t.Fatal("Selected() ok = false, expected true")
			}
			if got != tt.want {
				t.Errorf("Selected() = %q, expected %q", got, tt.want)
			}
			if cmd == nil {
				t.Error("selecting should quit the picker")
			}
		})
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m, cmd := pick(NewDifficultyModel(80, 24), runes("q"))
	if _, ok := m.Selected(); ok {
		t.Error("Selected() ok = true after quit, expected false")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestDifficultyModelView(t *testing.T) {
	m := NewDifficultyModel(80, 24)
	view := m.View()
	for _, want := range []string{"Select difficulty", "Easy", "Normal", "Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
