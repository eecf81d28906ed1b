package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
)

func replayCatalog() *catalog.Catalog {
	items := make([]catalog.Item, 30)
	for i := range items {
		items[i] = catalog.Item{Order: i + 1, Emoji: "🎄", Description: "event"}
	}
	return catalog.New("replay_test", items)
}

func replayModel(t *testing.T, n int) ReplayModel {
	t.Helper()
	cards, err := card.GenerateBatch(5, card.DefaultGenParams(), n)
	if err != nil {
		t.Fatal(err)
	}
	return NewReplayModel(replayCatalog(), cards, 10)
}

func press(m ReplayModel, keys ...string) ReplayModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ReplayModel)
	}
	return m
}

func TestReplayStepping(t *testing.T) {
	m := replayModel(t, 1)

	if m.FirstWin() != 20 {
		t.Fatalf("FirstWin = %d, want 20", m.FirstWin())
	}

	m = press(m, "n", "n", " ")
	if m.Call() != 3 {
		t.Errorf("Call = %d, want 3", m.Call())
	}

	m = press(m, "b")
	if m.Call() != 2 {
		t.Errorf("Call after undo = %d, want 2", m.Call())
	}

	m = press(m, "r", "b")
	if m.Call() != 0 {
		t.Errorf("Call after reset = %d, want 0", m.Call())
	}
}

func TestReplayJumpToWin(t *testing.T) {
	m := replayModel(t, 1)

	m = press(m, "w")
	if m.Call() != 20 {
		t.Fatalf("Call = %d, want 20", m.Call())
	}
	if !m.Bingo() {
		t.Error("expected bingo at the winning call")
	}
	if !strings.Contains(m.View(), "BINGO on call 20") {
		t.Error("view does not announce the win")
	}

	m = press(m, "b")
	if m.Bingo() {
		t.Error("bingo one call before the winning call")
	}
}

func TestReplayCallsClamp(t *testing.T) {
	m := replayModel(t, 1)
	for i := 0; i < 40; i++ {
		m = press(m, "n")
	}
	if m.Call() != 30 {
		t.Errorf("Call = %d, want clamp at 30", m.Call())
	}
}

func TestReplaySwitchCards(t *testing.T) {
	m := replayModel(t, 3)

	m = press(m, "n", "tab")
	if m.CardIndex() != 1 {
		t.Errorf("CardIndex = %d, want 1", m.CardIndex())
	}
	if m.Call() != 0 {
		t.Errorf("switching cards should restart, Call = %d", m.Call())
	}

	m = press(m, "shift+tab", "shift+tab")
	if m.CardIndex() != 2 {
		t.Errorf("CardIndex = %d, want wrap to 2", m.CardIndex())
	}
}

func TestReplayAutoplay(t *testing.T) {
	m := replayModel(t, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = next.(ReplayModel)
	if !m.Autoplay() || cmd == nil {
		t.Fatal("autoplay did not start a tick")
	}

	for i := 0; i < 25 && m.Autoplay(); i++ {
		next, _ = m.Update(TickMsg{})
		m = next.(ReplayModel)
	}
	if m.Autoplay() {
		t.Error("autoplay should stop on the winning call")
	}
	if m.Call() != 20 {
		t.Errorf("autoplay stopped at %d, want 20", m.Call())
	}
}

func TestReplayQuit(t *testing.T) {
	m := replayModel(t, 1)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(ReplayModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
