// ABOUTME: CLI entry point for statehistory: interactive counter or headless print mode
// ABOUTME: Parses flags, loads YAML config, picks the mode from flags and whether stdout is a terminal

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mauromedda/statehistory/internal/config"
	pilog "github.com/mauromedda/statehistory/internal/log"
	"github.com/mauromedda/statehistory/internal/mode/interactive/counter"
	"github.com/mauromedda/statehistory/internal/mode/print"
	"github.com/mauromedda/statehistory/internal/termfix"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	args, err := parseFlags("statehistory", argv, stderr)
	if err != nil {
		return err
	}

	if args.version {
		fmt.Fprintf(stdout, "statehistory %s (%s) built %s\n", version, commit, date)
		return nil
	}

	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadAll(cwd, buildOverrides(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}
	pilog.Debug("config: seed=%d step=%d format=%s", cfg.SeedOr(0), cfg.Step, cfg.Format)

	if args.print || args.script != "" || !isTerminal(stdout) {
		script, err := resolveScript(args, stdin)
		if err != nil {
			return err
		}
		return print.Run(stdout, print.Config{
			Seed:   cfg.SeedOr(0),
			Step:   cfg.Step,
			Format: cfg.Format,
		}, script)
	}

	final, err := counter.Run(counter.Options{
		Seed:   cfg.SeedOr(0),
		Step:   cfg.Step,
		Accent: cfg.Accent,
		Light:  termfix.Light(),
	})
	if err != nil {
		return err
	}
	st := final.State()
	pilog.Info("final value %d at %d of %d", st.Value, st.Pointer+1, len(st.Entries))
	return nil
}

// buildOverrides maps explicitly set flags onto a Settings layer.
func buildOverrides(args cliArgs) *config.Settings {
	o := &config.Settings{
		Step:    args.step,
		Format:  strings.ToLower(args.format),
		Verbose: args.verbose,
	}
	if args.seedSet {
		seed := args.seed
		o.Seed = &seed
	}
	return o
}

// resolveScript picks the print-mode script: --script, then positional
// arguments, then stdin.
func resolveScript(args cliArgs, stdin io.Reader) (string, error) {
	if args.script != "" {
		return args.script, nil
	}
	if len(args.rest) > 0 {
		return strings.Join(args.rest, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
