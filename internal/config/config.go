// ABOUTME: Settings loading with global + project + explicit-file YAML merge
// ABOUTME: Missing global/project files are empty; later layers override non-zero fields

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied after merging.
const (
	DefaultStep   = 1
	DefaultFormat = "text"
	DefaultAccent = "212"
)

// ErrInvalidSettings is wrapped by Validate failures.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the merged configuration. Seed is a pointer so that an
// explicit 0 in a later layer can override an earlier non-zero seed.
type Settings struct {
	Seed    *int   `yaml:"seed,omitempty"`
	Step    int    `yaml:"step,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// SeedOr returns the configured seed or fallback when none is set.
func (s *Settings) SeedOr(fallback int) int {
	if s.Seed == nil {
		return fallback
	}
	return *s.Seed
}

// LoadAll reads global settings, project settings, then the file named by
// STATEHISTORY_CONFIG if set, and merges them in that order. overrides
// (typically from CLI flags) are applied last.
func LoadAll(projectRoot string, overrides *Settings) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)

	if path := os.Getenv(EnvConfigFile); path != "" {
		explicit, err := loadFile(path)
		if err != nil {
			// An explicitly named file must exist.
			return nil, fmt.Errorf("loading %s: %w", EnvConfigFile, err)
		}
		merged = merge(merged, explicit)
	}

	merged = merge(merged, overrides)
	applyDefaults(merged)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks field ranges after defaults are applied.
func (s *Settings) Validate() error {
	if s.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSettings, s.Step)
	}
	switch s.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidSettings, s.Format)
	}
	return nil
}

// loadFile reads Settings from a YAML file. Returns empty Settings together
// with the error when the file cannot be read.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	return &s, nil
}

// merge overlays non-zero fields of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	result := *base
	if top == nil {
		return &result
	}

	if top.Seed != nil {
		seed := *top.Seed
		result.Seed = &seed
	}
	if top.Step != 0 {
		result.Step = top.Step
	}
	if top.Format != "" {
		result.Format = top.Format
	}
	if top.Accent != "" {
		result.Accent = top.Accent
	}
	if top.Verbose {
		result.Verbose = true
	}
	return &result
}

func applyDefaults(s *Settings) {
	if s.Step == 0 {
		s.Step = DefaultStep
	}
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	if s.Accent == "" {
		s.Accent = DefaultAccent
	}
}
