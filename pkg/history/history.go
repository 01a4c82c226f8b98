// ABOUTME: Generic linear history log with a current-position pointer
// ABOUTME: Commit truncates the redo tail; navigation outside the log is a silent no-op

package history

import (
	"iter"
	"slices"
)

// Log holds an ordered, never-empty sequence of values and a pointer to the
// current one. A Log is not safe for concurrent use; it expects a single
// owner calling it sequentially.
type Log[T any] struct {
	entries []T
	pointer int
	subs    []*subscriber[T]
}

// New creates a Log seeded with a single value.
func New[T any](seed T) *Log[T] {
	return &Log[T]{entries: []T{seed}}
}

// Current returns the value at the pointer.
func (l *Log[T]) Current() T {
	return l.entries[l.pointer]
}

// Position returns the pointer index.
func (l *Log[T]) Position() int {
	return l.pointer
}

// Len returns the number of entries, always at least 1.
func (l *Log[T]) Len() int {
	return len(l.entries)
}

// Snapshot returns a copy of the entries. Changes to the returned slice
// never reach the log.
func (l *Log[T]) Snapshot() []T {
	return slices.Clone(l.entries)
}

// At returns the entry at index i and whether i was in range.
func (l *Log[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.entries) {
		var zero T
		return zero, false
	}
	return l.entries[i], true
}

// All iterates the entries oldest first without copying. The log must not
// be mutated while iterating.
func (l *Log[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.entries {
			if !yield(i, v) {
				return
			}
		}
	}
}

// CanBack reports whether Back would move the pointer.
func (l *Log[T]) CanBack() bool {
	return l.pointer > 0
}

// CanForward reports whether Forward would move the pointer.
func (l *Log[T]) CanForward() bool {
	return l.pointer < len(l.entries)-1
}

// Commit appends the value described by u and moves the pointer to it.
// Entries after the pointer are discarded first.
func (l *Log[T]) Commit(u Update[T]) {
	next := u.resolve(l.entries[l.pointer])
	if l.pointer < len(l.entries)-1 {
		// Zero the dropped tail so it can be collected.
		clear(l.entries[l.pointer+1:])
		l.entries = l.entries[:l.pointer+1]
	}
	l.entries = append(l.entries, next)
	l.pointer = len(l.entries) - 1
	l.notify(OpCommit)
}

// Set commits v.
func (l *Log[T]) Set(v T) {
	l.Commit(Value(v))
}

// Apply commits fn(Current()).
func (l *Log[T]) Apply(fn func(current T) T) {
	l.Commit(Func(fn))
}

// Back moves the pointer one entry towards the oldest. It returns false
// when already at the oldest entry.
func (l *Log[T]) Back() bool {
	if l.pointer <= 0 {
		return false
	}
	l.pointer--
	l.notify(OpBack)
	return true
}

// Forward moves the pointer one entry towards the newest. It returns false
// when already at the newest entry.
func (l *Log[T]) Forward() bool {
	if l.pointer >= len(l.entries)-1 {
		return false
	}
	l.pointer++
	l.notify(OpForward)
	return true
}

// Go moves the pointer to index. Out-of-range indexes are ignored and
// report false.
func (l *Log[T]) Go(index int) bool {
	if index < 0 || index >= len(l.entries) {
		return false
	}
	l.pointer = index
	l.notify(OpGo)
	return true
}

// First moves the pointer to the oldest entry.
func (l *Log[T]) First() bool {
	if l.pointer == 0 {
		return false
	}
	l.pointer = 0
	l.notify(OpFirst)
	return true
}

// Last moves the pointer to the newest entry.
func (l *Log[T]) Last() bool {
	last := len(l.entries) - 1
	if l.pointer == last {
		return false
	}
	l.pointer = last
	l.notify(OpLast)
	return true
}
