// ABOUTME: Parser for print-mode scripts: whitespace or ';' separated history operations
// ABOUTME: set and go take an integer argument; '#' starts a comment that runs to end of line

package print

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownOp is wrapped when a token is not a known operation.
	ErrUnknownOp = errors.New("unknown op")
	// ErrBadArgument is wrapped when an operation's argument is missing or
	// not an integer.
	ErrBadArgument = errors.New("bad argument")
)

// Step is one parsed operation. Token is the 1-based token position of the
// operation in the script.
type Step struct {
	Op     string
	Arg    int
	HasArg bool
	Token  int
}

// String renders the step the way it was written.
func (s Step) String() string {
	if s.HasArg {
		return s.Op + " " + strconv.Itoa(s.Arg)
	}
	return s.Op
}

// ops maps each operation to whether it takes an argument.
var ops = map[string]bool{
	"inc":        false,
	"dec":        false,
	"set":        true,
	"back":       false,
	"forward":    false,
	"go":         true,
	"first":      false,
	"last":       false,
	"clear":      false,
	"trim-start": false,
	"trim-end":   false,
}

// ParseScript splits src into steps.
func ParseScript(src string) ([]Step, error) {
	toks := tokenize(src)
	steps := make([]Step, 0, len(toks))

	for i := 0; i < len(toks); i++ {
		name := strings.ToLower(toks[i])
		takesArg, ok := ops[name]
		if !ok {
			return nil, fmt.Errorf("token %d: %w %q", i+1, ErrUnknownOp, toks[i])
		}
		step := Step{Op: name, Token: i + 1}
		if takesArg {
			if i+1 >= len(toks) {
				return nil, fmt.Errorf("token %d: %w: %s needs an integer", i+1, ErrBadArgument, name)
			}
			n, err := strconv.Atoi(toks[i+1])
			if err != nil {
				return nil, fmt.Errorf("token %d: %w: %s %q", i+2, ErrBadArgument, name, toks[i+1])
			}
			step.Arg, step.HasArg = n, true
			i++
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func tokenize(src string) []string {
	var toks []string
	for _, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks = append(toks, strings.FieldsFunc(line, func(r rune) bool {
			return r == ';' || r == ' ' || r == '\t' || r == '\r'
		})...)
	}
	return toks
}
