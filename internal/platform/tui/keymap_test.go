package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shop/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.key)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.key.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if !km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame) {
		t.Error("motion should be recorded")
	}
	if !km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame) {
		t.Error("press should be recorded")
	}
	if km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionRelease}, &frame) {
		t.Error("release should be ignored")
	}

	want := []core.Point{{X: 3, Y: 4}, {X: 5, Y: 6}}
	if len(frame.Moves) != len(want) {
		t.Fatalf("moves = %v, want %v", frame.Moves, want)
	}
	for i := range want {
		if frame.Moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, frame.Moves[i], want[i])
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]MenuAction{
		"k":     MenuActionUp,
		"j":     MenuActionDown,
		"enter": MenuActionSelect,
		"esc":   MenuActionBack,
		"q":     MenuActionQuit,
	}
	keysByName := map[string]tea.KeyMsg{
		"k":     {Type: tea.KeyRunes, Runes: []rune("k")},
		"j":     {Type: tea.KeyRunes, Runes: []rune("j")},
		"enter": {Type: tea.KeyEnter},
		"esc":   {Type: tea.KeyEsc},
		"q":     {Type: tea.KeyRunes, Runes: []rune("q")},
	}

	for name, want := range tests {
		if got := km.MapKeyToMenuAction(keysByName[name]); got != want {
			t.Errorf("MapKeyToMenuAction(%s) = %v, want %v", name, got, want)
		}
	}
}
