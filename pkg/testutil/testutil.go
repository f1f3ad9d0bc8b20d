// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcarmo/go-readmkdir/pkg/core"
	"github.com/rcarmo/go-readmkdir/pkg/core/fs"
)

// TempDirWithDirs creates a temp directory containing the given
// subdirectories (relative paths, parents created as needed).
func TempDirWithDirs(t *testing.T, dirs []string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// CaptureStdio creates a Stdio with captured output buffers.
// Returns the Stdio, stdout buffer, and stderr buffer.
func CaptureStdio(input string) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &core.Stdio{
		In:  strings.NewReader(input),
		Out: out,
		Err: errBuf,
	}, out, errBuf
}

// AssertExitCode checks that the exit code matches expected.
func AssertExitCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("exit code = %d, want %d", got, want)
	}
}

// AssertOutputContains checks that output contains expected substring.
func AssertOutputContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output %q does not contain %q", got, want)
	}
}

// AssertDirExists checks that path exists and is a directory.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := fs.Stat(path)
	if err != nil {
		t.Errorf("directory %q: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", path)
	}
}

// AssertFileNotExists checks that a file does not exist.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("file %q should not exist", path)
	}
}

// AssertDirEntries checks the exact set of names directly inside dir.
func AssertDirEntries(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
		t.Errorf("entries of %s = %q, want %q", dir, got, want)
	}
}

// RunApplet is a helper type for running applet tests.
type RunApplet func(stdio *core.Stdio, args []string) int

// AppletTestCase defines a parameterized test case for applets.
type AppletTestCase struct {
	Name     string                         // Test name
	Args     []string                       // Command line arguments
	Input    string                         // Stdin input
	WantCode int                            // Expected exit code
	WantOut  string                         // Expected stdout (exact match)
	WantErr  string                         // Expected stderr substring; empty means stderr must be empty
	Dirs     []string                       // Directories to create in temp dir
	Setup    func(t *testing.T, dir string) // Optional setup function
	Check    func(t *testing.T, dir string) // Optional post-run check
}

// RunAppletTests runs a slice of parameterized applet test cases.
func RunAppletTests(t *testing.T, run RunApplet, tests []AppletTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			dir := TempDirWithDirs(t, tt.Dirs)

			// Change to temp dir for relative path tests
			oldDir, _ := os.Getwd()
			if err := os.Chdir(dir); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = os.Chdir(oldDir) })

			if tt.Setup != nil {
				tt.Setup(t, dir)
			}

			stdio, out, errBuf := CaptureStdio(tt.Input)
			code := run(stdio, tt.Args)

			AssertExitCode(t, code, tt.WantCode)
			if out.String() != tt.WantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.WantOut)
			}
			if tt.WantErr != "" {
				AssertOutputContains(t, errBuf.String(), tt.WantErr)
			} else if errBuf.Len() != 0 {
				t.Errorf("unexpected stderr: %q", errBuf.String())
			}

			if tt.Check != nil {
				tt.Check(t, dir)
			}
		})
	}
}
