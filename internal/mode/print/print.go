// ABOUTME: Headless print mode: runs a script of history operations on an int log
// ABOUTME: Emits one record per step as text lines or a YAML sequence; no-ops are reported, not errors

package print

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/statehistory/internal/log"
	"github.com/mauromedda/statehistory/pkg/history"
)

// Config configures a print-mode run.
type Config struct {
	Seed   int
	Step   int    // inc/dec amount; 0 means 1
	Format string // "text" (default) or "yaml"
}

// Record is the outcome of one step.
type Record struct {
	Op      string `yaml:"op"`
	Changed bool   `yaml:"changed"`
	Value   int    `yaml:"value"`
	Pointer int    `yaml:"pointer"`
	History []int  `yaml:"history,flow"`
}

// Run parses script, executes it and writes the records to w.
func Run(w io.Writer, cfg Config, script string) error {
	steps, err := ParseScript(script)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	records := Execute(cfg, steps)

	switch cfg.Format {
	case "", "text":
		return writeText(w, records)
	case "yaml":
		return writeYAML(w, records)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// Execute applies steps to a fresh log seeded with cfg.Seed. The first
// record is the seed state under op "start".
func Execute(cfg Config, steps []Step) []Record {
	step := cfg.Step
	if step <= 0 {
		step = 1
	}

	h := history.New(cfg.Seed)
	changed := false
	unsub := h.Subscribe(func(c history.Change[int]) {
		changed = true
		pilog.Debug("print: %s -> pointer=%d len=%d", c.Op, c.State.Pointer, len(c.State.Entries))
	})
	defer unsub()

	records := make([]Record, 0, len(steps)+1)
	records = append(records, record("start", true, h))

	for _, s := range steps {
		changed = false
		apply(h, s, step)
		records = append(records, record(s.String(), changed, h))
	}
	return records
}

func apply(h *history.Log[int], s Step, step int) {
	switch s.Op {
	case "inc":
		h.Apply(func(c int) int { return c + step })
	case "dec":
		h.Apply(func(c int) int { return c - step })
	case "set":
		h.Set(s.Arg)
	case "back":
		h.Back()
	case "forward":
		h.Forward()
	case "go":
		h.Go(s.Arg)
	case "first":
		h.First()
	case "last":
		h.Last()
	case "clear":
		h.Clear()
	case "trim-start":
		h.TrimStart()
	case "trim-end":
		h.TrimEnd()
	}
}

func record(op string, changed bool, h *history.Log[int]) Record {
	st := h.State()
	return Record{
		Op:      op,
		Changed: changed,
		Value:   st.Value,
		Pointer: st.Pointer,
		History: st.Entries,
	}
}

func writeText(w io.Writer, records []Record) error {
	for _, r := range records {
		op := r.Op
		if !r.Changed {
			op += " (no-op)"
		}
		if _, err := fmt.Fprintf(w, "%s -> value=%d pointer=%d history=%v\n", op, r.Value, r.Pointer, r.History); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}
