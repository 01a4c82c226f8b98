// ABOUTME: Display width of plain strings with grapheme-aware segmentation
// ABOUTME: Fast path for printable ASCII; runewidth per grapheme cluster otherwise

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks elided text.
const Ellipsis = "…"

// Of returns the number of terminal cells s occupies. s must not contain
// escape sequences; measure before styling.
func Of(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Truncate shortens s to at most max cells, ending in an ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Of(s) <= max {
		return s
	}
	if max == 1 {
		return Ellipsis
	}

	target := max - 1
	col := 0
	end := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		cw := clusterWidth(cluster)
		if col+cw > target {
			break
		}
		col += cw
		end += len(cluster)
		rest, state = next, newState
	}
	return s[:end] + Ellipsis
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
