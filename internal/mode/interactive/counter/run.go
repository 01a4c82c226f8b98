// ABOUTME: Entry point for the interactive counter
// ABOUTME: Runs the Bubble Tea program on stderr with the alternate screen until quit

package counter

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	pilog "github.com/mauromedda/statehistory/internal/log"
)

// Run starts the counter and blocks until the user quits. It returns the
// final model so callers can report the last state.
func Run(opts Options) (Model, error) {
	// Debug lines would tear the alternate screen.
	prev := pilog.SetOutput(io.Discard)
	defer pilog.SetOutput(prev)

	p := tea.NewProgram(
		New(opts),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("bubble tea: %w", err)
	}
	m, _ := final.(Model)
	return m, nil
}
