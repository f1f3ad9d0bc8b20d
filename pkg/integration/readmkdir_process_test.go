package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rcarmo/go-readmkdir/pkg/testutil"
)

// runProcess runs the binary in dir. A nil stdin leaves the child's stdin
// attached to the null device, which reads as an immediate end-of-stream.
func runProcess(t *testing.T, bin string, stdin *string, dir string) (string, string, int) {
	t.Helper()
	cmd := testutil.Command(bin)
	cmd.Dir = dir
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		} else {
			t.Fatalf("run readmkdir: %v", err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func ptr(s string) *string { return &s }

func TestProcess(t *testing.T) {
	bin := testutil.BuildBinary(t, "./cmd/readmkdir")

	tests := []struct {
		name     string
		stdin    *string
		dirs     []string
		wantCode int
		wantErr  string
		wantDirs []string
	}{
		{name: "creates_with_newline", stdin: ptr("mydir\n"), wantDirs: []string{"mydir\n"}},
		{name: "closed_stdin", stdin: nil, wantCode: 1, wantErr: "failed to read line"},
		{name: "already_exists", stdin: ptr("taken"), dirs: []string{"taken"}, wantDirs: []string{"taken"}},
		{name: "missing_parent", stdin: ptr("no/such\n"), wantDirs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.TempDirWithDirs(t, tt.dirs)

			out, errOut, code := runProcess(t, bin, tt.stdin, dir)
			testutil.AssertExitCode(t, code, tt.wantCode)
			if out != "" {
				t.Errorf("unexpected stdout: %q", out)
			}
			if tt.wantErr != "" {
				testutil.AssertOutputContains(t, errOut, tt.wantErr)
			} else if errOut != "" {
				t.Errorf("unexpected stderr: %q", errOut)
			}
			testutil.AssertDirEntries(t, dir, tt.wantDirs...)
			for _, name := range tt.wantDirs {
				testutil.AssertDirExists(t, filepath.Join(dir, name))
			}
		})
	}
}

func TestProcessUnreadableStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory handles cannot be opened as stdin on windows")
	}
	bin := testutil.BuildBinary(t, "./cmd/readmkdir")
	dir := t.TempDir()

	// Reading a directory handle fails with EISDIR.
	stdin, err := os.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	cmd := testutil.Command(bin)
	cmd.Dir = dir
	cmd.Stdin = stdin
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	err = cmd.Run()
	ee, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	testutil.AssertExitCode(t, ee.ExitCode(), 1)
	testutil.AssertOutputContains(t, errBuf.String(), "failed to read line")
	testutil.AssertDirEntries(t, dir)
}
