// ABOUTME: Tests for the print-mode script parser
// ABOUTME: Separators, comments, arguments, and sentinel-wrapped parse errors

package print

import (
	"errors"
	"slices"
	"testing"
)

func TestParseScript(t *testing.T) {
	t.Parallel()

	src := "inc inc;back\n# a comment line\nset -4 go 0 # trailing\nTRIM-START\ttrim-end"
	steps, err := ParseScript(src)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, s := range steps {
		got = append(got, s.String())
	}
	want := []string{"inc", "inc", "back", "set -4", "go 0", "trim-start", "trim-end"}
	if !slices.Equal(got, want) {
		t.Errorf("steps = %q, want %q", got, want)
	}
	if steps[3].Token != 4 || steps[4].Token != 6 {
		t.Errorf("tokens = %d, %d; want 4, 6", steps[3].Token, steps[4].Token)
	}
}

func TestParseScript_Empty(t *testing.T) {
	t.Parallel()

	steps, err := ParseScript("  \n# nothing\n;;")
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 0 {
		t.Errorf("len(steps) = %d, want 0", len(steps))
	}
}

func TestParseScript_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "inc jump", ErrUnknownOp},
		{"missing arg", "set", ErrBadArgument},
		{"non-int arg", "go x", ErrBadArgument},
		{"stray number", "inc 3", ErrUnknownOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseScript(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseScript(%q) error = %v, want %v", tt.src, err, tt.want)
			}
		})
	}
}
