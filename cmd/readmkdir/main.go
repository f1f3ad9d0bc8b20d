package main

import (
	"os"

	"github.com/rcarmo/go-readmkdir/pkg/applets/readmkdir"
	"github.com/rcarmo/go-readmkdir/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(readmkdir.Run(stdio, os.Args[1:]))
}
