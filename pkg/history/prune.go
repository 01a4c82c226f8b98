// ABOUTME: Manual pruning of the history log: clear, trim start, trim end
// ABOUTME: The current value always survives; only unreachable past or future is dropped

package history

// Clear collapses the log to the current value alone.
func (l *Log[T]) Clear() {
	current := l.entries[l.pointer]
	clear(l.entries)
	l.entries = append(l.entries[:0], current)
	l.pointer = 0
	l.notify(OpClear)
}

// TrimStart drops every entry before the pointer. It returns false when
// nothing precedes the current value.
func (l *Log[T]) TrimStart() bool {
	if l.pointer == 0 {
		return false
	}
	// Copy into a fresh slice so the dropped prefix is not kept alive by
	// the backing array.
	kept := make([]T, len(l.entries)-l.pointer)
	copy(kept, l.entries[l.pointer:])
	l.entries = kept
	l.pointer = 0
	l.notify(OpTrimStart)
	return true
}

// TrimEnd drops every entry after the pointer. It returns false when
// nothing follows the current value.
func (l *Log[T]) TrimEnd() bool {
	if l.pointer == len(l.entries)-1 {
		return false
	}
	clear(l.entries[l.pointer+1:])
	l.entries = l.entries[:l.pointer+1]
	l.notify(OpTrimEnd)
	return true
}
