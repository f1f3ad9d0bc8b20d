// Package textutil provides shared helpers for text applets.
package textutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	ErrNoInput     = errors.New("no input")
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ReadLine reads the first line from r, including its '\n' terminator when
// one is present. A last line cut off by end-of-stream is returned as is.
// End-of-stream before any byte yields ErrNoInput.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	if line == "" {
		return "", ErrNoInput
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}
	return line, nil
}
