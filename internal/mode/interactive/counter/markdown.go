// ABOUTME: Help panel rendered from markdown with glamour
// ABOUTME: Caches the rendering per width; falls back to the raw markdown on renderer errors

package counter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `## Keys

| Key | Action |
|-----|--------|
| ` + "`+` `up`" + ` | increase by step |
| ` + "`-` `down`" + ` | decrease by step |
| ` + "`g` `home`" + ` | first entry |
| ` + "`h` `left`" + ` | back |
| ` + "`l` `right`" + ` | forward |
| ` + "`G` `end`" + ` | last entry |
| ` + "`c`" + ` | clear history, keep current |
| ` + "`s`" + ` | trim start, drop the past |
| ` + "`e`" + ` | trim end, drop the future |
| ` + "`/`" + ` | jump to an entry (` + "`#3`" + ` or fuzzy value) |
| ` + "`?`" + ` | toggle this help |
| ` + "`q`" + ` | quit |

Changing the count while looking at an older entry discards every newer entry.
`

// helpRenderer renders helpMarkdown once per width.
type helpRenderer struct {
	cache map[int]string
}

func newHelpRenderer() *helpRenderer {
	return &helpRenderer{cache: make(map[int]string)}
}

func (r *helpRenderer) render(width int) string {
	if cached, ok := r.cache[width]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[width] = rendered
	return rendered
}
