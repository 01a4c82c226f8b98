// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --seed, --step, --print, --script, --format, --verbose, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	seed    int
	seedSet bool
	step    int
	print   bool
	script  string
	format  string
	verbose bool
	version bool
	rest    []string
}

func parseFlags(name string, argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&args.seed, "seed", 0, "Initial value of the history")
	fs.IntVar(&args.step, "step", 0, "Amount added or removed by increase/decrease (default from config, else 1)")
	fs.BoolVar(&args.print, "print", false, "Non-interactive print mode")
	fs.StringVar(&args.script, "script", "", "Print-mode script, e.g. \"inc inc back trim-start\"")
	fs.StringVar(&args.format, "format", "", "Print-mode output format: text or yaml")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging on stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			args.seedSet = true
		}
	})
	args.rest = fs.Args()
	return args, nil
}
