package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pintlang/pint/internal/config"
	"github.com/pintlang/pint/pkg/cli"
)

func runShell(t *testing.T, input string) (out, errOut string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	shell := cli.NewShell(config.DefaultSettings(), strings.NewReader(input), &outBuf, &errBuf)
	code := shell.Loop()
	assert.Equal(t, 0, code)
	return outBuf.String(), errBuf.String()
}

func TestShellEchoesExpressionResults(t *testing.T) {
	out, errOut := runShell(t, "1 + 2\n")
	assert.Empty(t, errOut)
	assert.Contains(t, out, "3\n")
}

func TestShellKeepsNamespaceAcrossInputs(t *testing.T) {
	out, errOut := runShell(t, "x = 5\nx * 2\n")
	assert.Empty(t, errOut)
	assert.Contains(t, out, "10\n")
}

func TestShellContinuationForOpenBlock(t *testing.T) {
	input := "def double(n):\n    return n * 2\n\ndouble(21)\n"
	out, errOut := runShell(t, input)
	assert.Empty(t, errOut)
	assert.Contains(t, out, config.DefaultContinuationPrompt)
	assert.Contains(t, out, "42\n")
}

func TestShellSuppressesNoneAndEmptyResults(t *testing.T) {
	input := "print(1)\nwhile True:\n    break\n\n"
	out, errOut := runShell(t, input)
	assert.Empty(t, errOut)
	// print writes its own line; its None return value is not echoed, and
	// the loop's empty result sequence stays silent too.
	assert.NotContains(t, out, "None")
	assert.NotContains(t, out, "[]")
}

func TestShellUserPrintShadowsBuiltin(t *testing.T) {
	input := "def print(x):\n    return 42\n\nr = print(5)\nr\n"
	out, errOut := runShell(t, input)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "42\n")
	assert.NotContains(t, out, "5\n")
}

func TestShellReportsErrorsAndKeepsRunning(t *testing.T) {
	out, errOut := runShell(t, "nope\n1 + 1\n")
	assert.Contains(t, errOut, "name 'nope' is not defined")
	assert.Contains(t, out, "2\n")
}
