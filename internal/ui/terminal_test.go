package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("  1 \nlast"), &out, io.Discard)

	got, err := term.Prompt("step: ")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, "step: ", out.String())

	got, err = term.Prompt("path: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "a final line without newline is still read")

	_, err = term.Prompt("again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestClearSkipsNonTerminal(t *testing.T) {
	var out bytes.Buffer
	NewTerminal(strings.NewReader(""), &out, io.Discard).Clear()
	assert.Empty(t, out.String())
}

func TestPrint(t *testing.T) {
	var out, errOut bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, &errOut)
	term.PrintInfo("info")
	term.PrintError("oops")
	assert.Equal(t, "info\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}
