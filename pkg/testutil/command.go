package testutil

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// Command wraps exec.Command for test helpers.
func Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...) // #nosec G204 -- test helper for external command
}

// BuildBinary compiles the main package at pkg (a path relative to the
// module root, e.g. "./cmd/readmkdir") into a temp dir and returns the
// binary path. The test is skipped when no go toolchain is available.
func BuildBinary(t *testing.T, pkg string) string {
	t.Helper()
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not installed")
	}
	root, err := ModuleRoot()
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), filepath.Base(pkg))
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	cmd := Command(goBin, "build", "-o", out, pkg)
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s: %v (%s)", pkg, err, output)
	}
	return out
}

// ModuleRoot returns the directory holding go.mod for this module.
func ModuleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate testutil source")
	}
	return filepath.Abs(filepath.Join(filepath.Dir(file), "..", ".."))
}
