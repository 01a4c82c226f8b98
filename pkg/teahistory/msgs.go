// ABOUTME: Bubble Tea messages and command constructors for history operations
// ABOUTME: Key handlers return these cmds; Binding.Update applies them to the log

package teahistory

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/statehistory/pkg/history"
)

// SetMsg commits an Update to the log.
type SetMsg[T any] struct {
	Update history.Update[T]
}

// BackMsg moves the pointer one entry back.
type BackMsg struct{}

// ForwardMsg moves the pointer one entry forward.
type ForwardMsg struct{}

// GoMsg moves the pointer to Index.
type GoMsg struct {
	Index int
}

// FirstMsg moves the pointer to the oldest entry.
type FirstMsg struct{}

// LastMsg moves the pointer to the newest entry.
type LastMsg struct{}

// ClearMsg collapses history to the current value.
type ClearMsg struct{}

// TrimStartMsg drops entries before the pointer.
type TrimStartMsg struct{}

// TrimEndMsg drops entries after the pointer.
type TrimEndMsg struct{}

// ChangedMsg is emitted after a history message changed the log. State is
// the value, pointer and entries read together right after the change.
type ChangedMsg[T any] struct {
	Op    history.Op
	State history.State[T]
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Set returns a cmd that commits u.
func Set[T any](u history.Update[T]) tea.Cmd { return msgCmd(SetMsg[T]{Update: u}) }

// Back returns a cmd that steps back.
func Back() tea.Cmd { return msgCmd(BackMsg{}) }

// Forward returns a cmd that steps forward.
func Forward() tea.Cmd { return msgCmd(ForwardMsg{}) }

// Go returns a cmd that jumps to index.
func Go(index int) tea.Cmd { return msgCmd(GoMsg{Index: index}) }

// First returns a cmd that jumps to the oldest entry.
func First() tea.Cmd { return msgCmd(FirstMsg{}) }

// Last returns a cmd that jumps to the newest entry.
func Last() tea.Cmd { return msgCmd(LastMsg{}) }

// Clear returns a cmd that collapses history.
func Clear() tea.Cmd { return msgCmd(ClearMsg{}) }

// TrimStart returns a cmd that drops the past.
func TrimStart() tea.Cmd { return msgCmd(TrimStartMsg{}) }

// TrimEnd returns a cmd that drops the future.
func TrimEnd() tea.Cmd { return msgCmd(TrimEndMsg{}) }
