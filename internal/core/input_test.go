package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionRestart)
	f.Set(ActionToggleGrid)
	if !f.Has(ActionRestart) || !f.Has(ActionToggleGrid) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionStart) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionRestart) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:             "None",
		ActionStart:            "Start",
		ActionToggleFullscreen: "ToggleFullscreen",
		Action(99):             "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("String() = %q, expected %q", a.String(), expected)
		}
	}
}
