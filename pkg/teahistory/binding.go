// ABOUTME: Binding adapts a history.Log to a Bubble Tea update loop
// ABOUTME: Applies history messages and emits ChangedMsg with a consistent state snapshot

package teahistory

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/statehistory/pkg/history"
)

// Logf receives one line per applied operation. Optional.
type Logf func(format string, args ...any)

// Binding routes history messages to a Log. It is meant to live inside a
// tea.Model, which Bubble Tea only updates from its event loop, so the
// log keeps a single writer.
type Binding[T any] struct {
	log  *history.Log[T]
	logf Logf
}

// New binds log. logf may be nil.
func New[T any](log *history.Log[T], logf Logf) *Binding[T] {
	return &Binding[T]{log: log, logf: logf}
}

// Log returns the bound log.
func (b *Binding[T]) Log() *history.Log[T] {
	return b.log
}

// State returns value, pointer and entries read together.
func (b *Binding[T]) State() history.State[T] {
	return b.log.State()
}

// Update applies msg if it is a history message. handled is false for any
// other message. cmd is non-nil only when the log changed and yields a
// ChangedMsg[T].
func (b *Binding[T]) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	var (
		op      history.Op
		changed bool
	)

	switch m := msg.(type) {
	case SetMsg[T]:
		b.log.Commit(m.Update)
		op, changed = history.OpCommit, true
	case BackMsg:
		op, changed = history.OpBack, b.log.Back()
	case ForwardMsg:
		op, changed = history.OpForward, b.log.Forward()
	case GoMsg:
		op, changed = history.OpGo, b.log.Go(m.Index)
	case FirstMsg:
		op, changed = history.OpFirst, b.log.First()
	case LastMsg:
		op, changed = history.OpLast, b.log.Last()
	case ClearMsg:
		b.log.Clear()
		op, changed = history.OpClear, true
	case TrimStartMsg:
		op, changed = history.OpTrimStart, b.log.TrimStart()
	case TrimEndMsg:
		op, changed = history.OpTrimEnd, b.log.TrimEnd()
	default:
		return false, nil
	}

	if !changed {
		b.debug("history %s: no-op at %d/%d", op, b.log.Position(), b.log.Len())
		return true, nil
	}

	st := b.log.State()
	b.debug("history %s: pointer=%d len=%d", op, st.Pointer, len(st.Entries))
	return true, func() tea.Msg {
		return ChangedMsg[T]{Op: op, State: st}
	}
}

func (b *Binding[T]) debug(format string, args ...any) {
	if b.logf != nil {
		b.logf(format, args...)
	}
}
