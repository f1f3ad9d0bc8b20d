// Package readmkdir implements the readmkdir command: it reads one line
// from standard input and creates a directory named by that line.
package readmkdir

import (
	"github.com/rcarmo/go-readmkdir/pkg/core"
	"github.com/rcarmo/go-readmkdir/pkg/core/fs"
	"github.com/rcarmo/go-readmkdir/pkg/core/textutil"
)

const applet = "readmkdir"

// Run executes the readmkdir command. Arguments are ignored.
//
// The line is used as the path verbatim, line terminator included. Only a
// failed read affects the exit status; the outcome of the mkdir does not.
func Run(stdio *core.Stdio, _ []string) int {
	line, err := textutil.ReadLine(stdio.In)
	if err != nil {
		core.NewLogger(stdio, applet).Error("failed to read line", "err", err)
		return core.ExitFailure
	}

	_ = fs.Mkdir(line, fs.DefaultDirMode)
	return core.ExitSuccess
}
