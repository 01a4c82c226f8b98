// ABOUTME: Counter view: current value, position, windowed history row, and control groups
// ABOUTME: Controls render dim when the store would ignore them at the current pointer

package counter

import (
	"fmt"
	"strings"

	"github.com/mauromedda/statehistory/pkg/tui/width"
)

const entrySep = ", "

// View renders the counter.
func (m Model) View() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	s := m.styles
	st := m.state

	var b strings.Builder
	b.WriteString(s.Title.Render("State with history"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Current Count:"), s.Value.Render(m.formatInt(st.Value)))
	fmt.Fprintf(&b, "%s %s of %s\n",
		s.Label.Render("History Position:"),
		s.Value.Render(m.formatInt(st.Pointer+1)),
		s.Value.Render(m.formatInt(len(st.Entries))))
	b.WriteString(m.historyRow(w))
	b.WriteString("\n\n")

	if m.mode == modeHelp {
		b.WriteString(m.help.render(w))
		b.WriteString("\n")
		return b.String()
	}

	for g := range groupTitles {
		b.WriteString(m.groupRow(group(g)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.mode == modeJump:
		b.WriteString(s.Prompt.Render("jump: "))
		b.WriteString(m.query)
	case m.status != "":
		b.WriteString(s.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(s.Label.Render("/ jump  ? help  q quit"))
	return b.String()
}

// historyRow renders "Full History: [...]" windowed around the pointer so
// it fits in w cells.
func (m Model) historyRow(w int) string {
	s := m.styles
	st := m.state
	const label = "Full History: "

	items := make([]string, len(st.Entries))
	for i, v := range st.Entries {
		items[i] = m.formatInt(v)
	}

	avail := max(w-width.Of(label)-2, 1) // brackets
	sep := width.Of(entrySep)
	start, end := width.Window(items, st.Pointer, sep, avail)

	// The current entry always shows; the ellipses go first when the
	// row is too narrow for both.
	left, right := start > 0, end < len(items)
	focusMax := avail
	if left {
		focusMax -= 1 + sep
	}
	if right {
		focusMax -= 1 + sep
	}
	if focusMax < 1 {
		left, right = false, false
		focusMax = avail
	}

	parts := make([]string, 0, end-start+2)
	if left {
		parts = append(parts, width.Ellipsis)
	}
	for i := start; i < end; i++ {
		item := items[i]
		if i == st.Pointer {
			parts = append(parts, s.Current.Render(width.Truncate(item, focusMax)))
			continue
		}
		parts = append(parts, s.Entry.Render(item))
	}
	if right {
		parts = append(parts, width.Ellipsis)
	}
	return s.Label.Render(label) + "[" + strings.Join(parts, entrySep) + "]"
}

func (m Model) groupRow(g group) string {
	s := m.styles
	var cells []string
	for _, c := range controls {
		if c.group != g {
			continue
		}
		cell := "[" + c.hint + "] " + c.label
		if c.enabled(m.state) {
			cells = append(cells, s.Key.Render("["+c.hint+"]")+" "+s.Enabled.Render(c.label))
		} else {
			cells = append(cells, s.Disabled.Render(cell))
		}
	}
	return s.Group.Render(groupTitles[g]) + strings.Join(cells, "  ")
}
