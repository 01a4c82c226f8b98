// ABOUTME: E2E tests for headless print mode with stdout on a pipe
// ABOUTME: A non-terminal stdout selects print mode without --print

package e2e

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestPrint_PipeSelectsPrintMode(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	cmd := exec.Command(binPath, "inc", "inc", "inc", "back", "trim-start")
	cmd.Env = isolatedEnv(t)
	cmd.Dir = t.TempDir()

	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("running binary: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if got, want := lines[len(lines)-1], "trim-start -> value=2 pointer=0 history=[2 3]"; got != want {
		t.Errorf("last line = %q, want %q", got, want)
	}
}

func TestPrint_ConfigFromEnvFile(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	cfgPath := t.TempDir() + "/custom.yaml"
	if err := writeFile(cfgPath, "seed: 100\nstep: 10\nformat: yaml\n"); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binPath, "--print", "inc")
	cmd.Env = isolatedEnv(t, "STATEHISTORY_CONFIG="+cfgPath)
	cmd.Dir = t.TempDir()

	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("running binary: %v", err)
	}
	if !strings.Contains(string(out), "history: [100, 110]") {
		t.Errorf("output:\n%s", out)
	}
}

func TestPrint_BadScriptExitsNonZero(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	cmd := exec.Command(binPath, "--print", "fly")
	cmd.Env = isolatedEnv(t)
	cmd.Dir = t.TempDir()

	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(string(out), "error: parsing script") {
		t.Errorf("output = %q", out)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
