// ABOUTME: Counter controls: key bindings, labels, groups, and enabled predicates
// ABOUTME: Each control builds a teahistory message; disabled controls swallow their keys

package counter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/statehistory/pkg/history"
	"github.com/mauromedda/statehistory/pkg/teahistory"
)

type group int

const (
	groupEdit group = iota
	groupNavigate
	groupPrune
)

var groupTitles = [...]string{
	groupEdit:     "Controls",
	groupNavigate: "Navigation",
	groupPrune:    "Clear History",
}

type control struct {
	hint    string // key shown in the view
	keys    []string
	label   string
	group   group
	enabled func(st history.State[int]) bool
	msg     func(step int) tea.Msg
}

func always(history.State[int]) bool { return true }
func notFirst(st history.State[int]) bool { return !st.AtFirst() }
func notLast(st history.State[int]) bool { return !st.AtLast() }

func add(delta int) func(c int) int {
	return func(c int) int { return c + delta }
}

var controls = []control{
	{"-", []string{"-", "down", "j"}, "Decrease", groupEdit, always,
		func(step int) tea.Msg { return teahistory.SetMsg[int]{Update: history.Func(add(-step))} }},
	{"+", []string{"+", "=", "up", "k"}, "Increase", groupEdit, always,
		func(step int) tea.Msg { return teahistory.SetMsg[int]{Update: history.Func(add(step))} }},

	{"g", []string{"g", "home"}, "First", groupNavigate, notFirst,
		func(int) tea.Msg { return teahistory.FirstMsg{} }},
	{"h", []string{"h", "left"}, "Back", groupNavigate, notFirst,
		func(int) tea.Msg { return teahistory.BackMsg{} }},
	{"l", []string{"l", "right"}, "Forward", groupNavigate, notLast,
		func(int) tea.Msg { return teahistory.ForwardMsg{} }},
	{"G", []string{"G", "end"}, "Last", groupNavigate, notLast,
		func(int) tea.Msg { return teahistory.LastMsg{} }},

	{"c", []string{"c"}, "Clear History", groupPrune, always,
		func(int) tea.Msg { return teahistory.ClearMsg{} }},
	{"s", []string{"s"}, "Trim Start", groupPrune, notFirst,
		func(int) tea.Msg { return teahistory.TrimStartMsg{} }},
	{"e", []string{"e"}, "Trim End", groupPrune, notLast,
		func(int) tea.Msg { return teahistory.TrimEndMsg{} }},
}

// controlFor returns the control bound to key.
func controlFor(key string) (control, bool) {
	for _, c := range controls {
		for _, k := range c.keys {
			if k == key {
				return c, true
			}
		}
	}
	return control{}, false
}
