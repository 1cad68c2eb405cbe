package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

type terminalUI struct {
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewTerminal returns an Interface reading from in and printing to out.
// Errors go to errOut.
func NewTerminal(in io.Reader, out, errOut io.Writer) Interface {
	return &terminalUI{reader: bufio.NewReader(in), out: out, errOut: errOut}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *terminalUI) Clear() {
	f, ok := t.out.(*os.File)
	if !ok || !IsTerminal(f) {
		return
	}
	fmt.Fprint(t.out, clearSequence)
}

func (t *terminalUI) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)
	input, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func (t *terminalUI) PrintInfo(s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(s string) {
	fmt.Fprintln(t.errOut, s)
}
