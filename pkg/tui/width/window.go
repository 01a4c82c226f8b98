// ABOUTME: Window picks the run of items around a focus index that fits a cell budget
// ABOUTME: Used to render long history rows centred on the pointer

package width

// Window returns the half-open range [start, end) of items to show so that
// the joined row fits in max cells and includes focus. sep is the width of
// the separator between items; elided sides cost one ellipsis cell plus one
// separator each. When even the focus item does not fit it is returned
// alone.
func Window(items []string, focus, sep, max int) (start, end int) {
	n := len(items)
	if n == 0 {
		return 0, 0
	}
	if focus < 0 {
		focus = 0
	}
	if focus >= n {
		focus = n - 1
	}

	start, end = focus, focus+1
	used := Of(items[focus])

	// cost of the row if it spans [s, e)
	fits := func(s, e, w int) bool {
		total := w
		if s > 0 {
			total += 1 + sep
		}
		if e < n {
			total += 1 + sep
		}
		return total <= max
	}

	// Grow alternately right then left, preferring newer entries.
	for {
		grew := false
		if end < n {
			w := used + sep + Of(items[end])
			if fits(start, end+1, w) {
				used = w
				end++
				grew = true
			}
		}
		if start > 0 {
			w := used + sep + Of(items[start-1])
			if fits(start-1, end, w) {
				used = w
				start--
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return start, end
}
