// ABOUTME: Change notification for the history log: Op kinds, State snapshots, subscribers
// ABOUTME: Subscribers run synchronously after each call that changed state; no-ops are silent

package history

import "slices"

// Op identifies the operation that changed a Log.
type Op int

const (
	OpCommit Op = iota
	OpBack
	OpForward
	OpGo
	OpFirst
	OpLast
	OpClear
	OpTrimStart
	OpTrimEnd
)

var opNames = [...]string{
	OpCommit:    "commit",
	OpBack:      "back",
	OpForward:   "forward",
	OpGo:        "go",
	OpFirst:     "first",
	OpLast:      "last",
	OpClear:     "clear",
	OpTrimStart: "trimStart",
	OpTrimEnd:   "trimEnd",
}

// String returns the operation name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

// State is a consistent read of a Log: value, pointer and entries taken
// together. Entries is a copy owned by the receiver.
type State[T any] struct {
	Value   T
	Pointer int
	Entries []T
}

// AtFirst reports whether the pointer is at the oldest entry.
func (s State[T]) AtFirst() bool {
	return s.Pointer == 0
}

// AtLast reports whether the pointer is at the newest entry.
func (s State[T]) AtLast() bool {
	return s.Pointer == len(s.Entries)-1
}

// State returns the current value, pointer and a copy of the entries.
func (l *Log[T]) State() State[T] {
	return State[T]{
		Value:   l.entries[l.pointer],
		Pointer: l.pointer,
		Entries: slices.Clone(l.entries),
	}
}

// Change is delivered to subscribers after a state-changing call.
type Change[T any] struct {
	Op    Op
	State State[T]
}

type subscriber[T any] struct {
	fn func(Change[T])
}

// Subscribe registers fn to be called after every call that changes the
// log, in registration order. The returned func removes the subscription
// and may be called more than once.
func (l *Log[T]) Subscribe(fn func(Change[T])) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s := &subscriber[T]{fn: fn}
	l.subs = append(l.subs, s)
	return func() {
		l.subs = slices.DeleteFunc(l.subs, func(x *subscriber[T]) bool { return x == s })
	}
}

func (l *Log[T]) notify(op Op) {
	if len(l.subs) == 0 {
		return
	}
	// Iterate a copy; callbacks may subscribe or unsubscribe.
	subs := slices.Clone(l.subs)
	for _, s := range subs {
		s.fn(Change[T]{Op: op, State: l.State()})
	}
}
