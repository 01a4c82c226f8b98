// ABOUTME: Model is the history-aware counter: a Bubble Tea app over a history.Log[int]
// ABOUTME: Keys apply history messages synchronously so back-to-back presses see each other's effect

package counter

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	pilog "github.com/mauromedda/statehistory/internal/log"
	"github.com/mauromedda/statehistory/pkg/history"
	"github.com/mauromedda/statehistory/pkg/teahistory"
	"github.com/mauromedda/statehistory/pkg/tui/fuzzy"
)

const defaultWidth = 80

type mode int

const (
	modeNormal mode = iota
	modeJump
	modeHelp
)

// Options configures a counter Model.
type Options struct {
	Seed   int
	Step   int
	Accent string
	Light  bool
}

// Model is the counter app.
type Model struct {
	binding *teahistory.Binding[int]
	state   history.State[int]
	step    int

	styles  Styles
	printer *message.Printer
	help    *helpRenderer

	mode   mode
	query  string
	status string
	width  int
}

// New creates a counter seeded with opts.Seed.
func New(opts Options) Model {
	step := opts.Step
	if step <= 0 {
		step = 1
	}
	accent := opts.Accent
	if accent == "" {
		accent = "212"
	}

	b := teahistory.New(history.New(opts.Seed), pilog.Debug)
	return Model{
		binding: b,
		state:   b.State(),
		step:    step,
		styles:  NewStyles(accent, opts.Light),
		printer: message.NewPrinter(language.English),
		help:    newHelpRenderer(),
	}
}

// State returns the state the view currently renders.
func (m Model) State() history.State[int] {
	return m.state
}

// Init returns nil; the counter starts idle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes history messages to the binding and keys to controls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.binding.Update(msg); handled {
		m.state = m.binding.State()
		return m, cmd
	}

	switch msg := msg.(type) {
	case teahistory.ChangedMsg[int]:
		// msg.State may be older than the log when keys arrive in a burst.
		m.state = m.binding.State()
		m.status = msg.Op.String()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeJump:
		return m.handleJumpKey(msg)
	case modeHelp:
		switch key {
		case "?", "esc", "q":
			m.mode = modeNormal
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
		return m, nil
	case "/":
		m.mode = modeJump
		m.query = ""
		m.status = ""
		return m, nil
	}

	c, ok := controlFor(key)
	if !ok {
		return m, nil
	}
	if !c.enabled(m.binding.State()) {
		m.status = c.label + " unavailable"
		return m, nil
	}
	return m.apply(c.msg(m.step))
}

// apply runs a history message against the log on the spot and refreshes
// the rendered state. The returned cmd carries the ChangedMsg for status.
func (m Model) apply(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.binding.Update(msg)
	m.state = m.binding.State()
	return m, cmd
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.query = ""
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.query += " "
		return m, nil
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		idx, ok := m.resolveJump(m.query)
		m.query = ""
		if !ok {
			m.status = "no match"
			return m, nil
		}
		if idx == m.state.Pointer {
			return m, nil
		}
		return m.apply(teahistory.GoMsg{Index: idx})
	}
	return m, nil
}

// resolveJump maps a jump query to a history index. "#N" addresses an
// index directly; anything else is fuzzy-matched against the entry labels.
func (m Model) resolveJump(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, false
	}
	if rest, ok := strings.CutPrefix(query, "#"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			if n < 0 || n >= len(m.state.Entries) {
				return 0, false
			}
			return n, true
		}
	}
	return fuzzy.Best(query, len(m.state.Entries), m.entryLabel)
}

func (m Model) entryLabel(i int) string {
	return fmt.Sprintf("#%d %d", i, m.state.Entries[i])
}

func (m Model) formatInt(n int) string {
	return m.printer.Sprintf("%d", n)
}
