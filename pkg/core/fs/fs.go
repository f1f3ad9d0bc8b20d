// Package fs provides filesystem operations that respect sandbox boundaries.
// Applets should use this package instead of direct os calls.
package fs

import (
	"os"

	"github.com/rcarmo/go-readmkdir/pkg/sandbox"
)

// DefaultDirMode is the mode new directories are requested with; the
// process umask still applies.
const DefaultDirMode os.FileMode = 0o777

// Mkdir creates a single directory. Missing parents are not created.
func Mkdir(path string, perm os.FileMode) error {
	return sandbox.Mkdir(path, perm)
}

// Stat returns file info.
func Stat(path string) (os.FileInfo, error) {
	return sandbox.Stat(path)
}
