package fitquest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestOnboardingFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitquest.db")

	out := runCommand(t, "--db", path,
		"profile", "set",
		"--gender", "male", "--weight", "70", "--height", "175", "--age", "30",
		"--activity", "moderate", "--goal", "maintain", "--recalc")
	if !strings.Contains(out, "Profile updated") {
		t.Fatalf("unexpected profile output %q", out)
	}

	runCommand(t, "--db", path, "mission", "generate")
	runCommand(t, "--db", path, "water", "log", "2500")

	out = runCommand(t, "--db", path, "mission", "check")
	if !strings.Contains(out, "Mission completed!") {
		t.Fatalf("expected hydration mission to complete, got %q", out)
	}

	out = runCommand(t, "--db", path, "today")
	if !strings.Contains(out, "Water: 2500/2500 ml") {
		t.Fatalf("unexpected today output %q", out)
	}
}
