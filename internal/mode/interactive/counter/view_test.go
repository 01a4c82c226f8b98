// ABOUTME: Tests for the counter view text
// ABOUTME: Position line, number grouping, windowed history row, and control groups

package counter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_Position(t *testing.T) {
	m := press(t, New(Options{}), "+", "+", "left")
	view := m.View()

	for _, want := range []string{"Current Count: 1", "History Position: 2 of 3", "Full History:", "Navigation", "Clear History"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q\n%s", want, view)
		}
	}
}

func TestView_GroupsThousands(t *testing.T) {
	m := New(Options{Seed: 1234567})
	if view := m.View(); !strings.Contains(view, "1,234,567") {
		t.Errorf("View() missing grouped number\n%s", view)
	}
}

func TestView_HistoryRowWindowed(t *testing.T) {
	m := New(Options{})
	for i := 0; i < 60; i++ {
		m = press(t, m, "+")
	}
	m = press(t, m, "/", "#", "3", "0", "enter")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)

	row := m.historyRow(40)
	if strings.Count(row, "…") != 2 {
		t.Errorf("historyRow = %q, want ellipsis on both sides", row)
	}
	if !strings.Contains(row, "30") {
		t.Errorf("historyRow = %q, want the current entry 30", row)
	}
}

func TestView_HistoryRowFull(t *testing.T) {
	m := press(t, New(Options{}), "+", "+")
	row := m.historyRow(80)
	if !strings.HasSuffix(row, "[0, 1, 2]") {
		t.Errorf("historyRow = %q, want full list", row)
	}
}

func TestView_HistoryRowNarrowKeepsCurrent(t *testing.T) {
	m := press(t, New(Options{}), "+", "+", "left")

	for _, w := range []int{1, 12, 16, 20} {
		row := m.historyRow(w)
		if !strings.Contains(row, "[") || !strings.Contains(row, "1") {
			t.Errorf("historyRow(%d) = %q, want the current entry 1", w, row)
		}
		if strings.Contains(row, ", ,") || strings.Contains(row, "[, ") {
			t.Errorf("historyRow(%d) = %q, has an empty slot", w, row)
		}
	}
}

func TestView_HistoryRowNarrowTruncatesCurrent(t *testing.T) {
	m := New(Options{Seed: 1234567})
	row := m.historyRow(10)
	if !strings.HasSuffix(row, "[…]") {
		t.Errorf("historyRow(10) = %q, want the current entry cut to an ellipsis", row)
	}
}
