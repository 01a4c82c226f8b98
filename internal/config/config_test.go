// ABOUTME: Tests for settings loading, merging, defaults, and validation
// ABOUTME: Uses temp directories and HOME overrides for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func intPtr(v int) *int { return &v }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Seed: intPtr(5), Step: 2, Accent: "99"}
	project := &Settings{Seed: intPtr(0), Format: "yaml"}

	result := merge(global, project)

	if result.SeedOr(-1) != 0 {
		t.Errorf("Seed = %d, want explicit 0 from project", result.SeedOr(-1))
	}
	if result.Step != 2 {
		t.Errorf("Step = %d, want 2", result.Step)
	}
	if result.Format != "yaml" || result.Accent != "99" {
		t.Errorf("Format=%q Accent=%q, want yaml/99", result.Format, result.Accent)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
	if result.Seed != nil {
		t.Error("merge(nil, nil) Seed should be unset")
	}
}

func TestMerge_DoesNotAliasSeed(t *testing.T) {
	t.Parallel()

	top := &Settings{Seed: intPtr(3)}
	result := merge(nil, top)
	*top.Seed = 7
	if result.SeedOr(0) != 3 {
		t.Errorf("Seed = %d, want 3", result.SeedOr(0))
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil empty settings")
	}
}

func TestLoadFile_Valid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "seed: 10\nstep: 5\nformat: YAML\naccent: \"33\"\n")

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.SeedOr(0) != 10 || s.Step != 5 || s.Format != "yaml" || s.Accent != "33" {
		t.Errorf("loadFile = %+v", s)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "step: [not, an, int]\n")

	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadAll_Layers(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigFile, "")

	writeFile(t, filepath.Join(home, ".statehistory", "config.yaml"), "seed: 1\nstep: 3\n")
	writeFile(t, filepath.Join(project, ".statehistory", "config.yaml"), "step: 4\n")

	s, err := LoadAll(project, &Settings{Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	if s.SeedOr(0) != 1 {
		t.Errorf("Seed = %d, want 1 from global", s.SeedOr(0))
	}
	if s.Step != 4 {
		t.Errorf("Step = %d, want 4 from project", s.Step)
	}
	if !s.Verbose {
		t.Error("Verbose override not applied")
	}
	if s.Format != DefaultFormat || s.Accent != DefaultAccent {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestLoadAll_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigFile, "")

	s, err := LoadAll(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != nil || s.Step != DefaultStep {
		t.Errorf("LoadAll with no files = %+v", s)
	}
}

func TestLoadAll_ExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, explicit, "seed: 42\n")
	t.Setenv(EnvConfigFile, explicit)

	s, err := LoadAll(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.SeedOr(0) != 42 {
		t.Errorf("Seed = %d, want 42", s.SeedOr(0))
	}
}

func TestLoadAll_ExplicitFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadAll(t.TempDir(), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadAll error = %v, want ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"ok text", Settings{Step: 1, Format: "text"}, false},
		{"ok yaml", Settings{Step: 2, Format: "yaml"}, false},
		{"negative step", Settings{Step: -1, Format: "text"}, true},
		{"bad format", Settings{Step: 1, Format: "json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidSettings", err)
			}
		})
	}
}
