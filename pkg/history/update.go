// ABOUTME: Update is the commit argument: either a literal value or a transform of the current one
// ABOUTME: Closed tagged union built only through Value and Func; no runtime type inspection

package history

// Update describes the next value to commit. The zero Update commits the
// zero value of T.
type Update[T any] struct {
	value T
	fn    func(T) T
	isFn  bool
}

// Value returns an Update that commits v as-is.
func Value[T any](v T) Update[T] {
	return Update[T]{value: v}
}

// Func returns an Update that commits fn(current). A nil fn commits the
// current value unchanged.
func Func[T any](fn func(current T) T) Update[T] {
	return Update[T]{fn: fn, isFn: true}
}

// IsFunc reports whether u was built with Func.
func (u Update[T]) IsFunc() bool {
	return u.isFn
}

// resolve computes the value to commit given the current one.
func (u Update[T]) resolve(current T) T {
	if !u.isFn {
		return u.value
	}
	if u.fn == nil {
		return current
	}
	return u.fn(current)
}
