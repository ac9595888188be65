package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pintlang/pint/pkg/cli"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want cli.Options
	}{
		{"empty", nil, cli.Options{}},
		{"eval_short", []string{"-e", "x = 1"}, cli.Options{Eval: "x = 1"}},
		{"eval_long", []string{"--eval", "x = 1"}, cli.Options{Eval: "x = 1"}},
		{"file", []string{"prog.pint"}, cli.Options{File: "prog.pint"}},
		{"tokens", []string{"--tokens", "prog.pint"}, cli.Options{PrintTokens: true, File: "prog.pint"}},
		{"parse_tree", []string{"--parse-tree"}, cli.Options{PrintParseTree: true}},
		{"config", []string{"--config", "a.yaml", "prog.pint"}, cli.Options{ConfigPath: "a.yaml", File: "prog.pint"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := cli.ParseArgs(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *opts)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"eval_missing_arg", []string{"-e"}},
		{"config_missing_arg", []string{"--config"}},
		{"unknown_flag", []string{"--frobnicate"}},
		{"two_files", []string{"a.pint", "b.pint"}},
		{"help", []string{"-h"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.ParseArgs(tc.args)
			assert.Error(t, err)
		})
	}
}

func runEntry(t *testing.T, args []string, stdin string) (code int, out, errOut string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = cli.Entry(args, strings.NewReader(stdin), &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func TestEntryEval(t *testing.T) {
	code, out, errOut := runEntry(t, []string{"-e", "print(1 + 2)"}, "")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "3\n", out)
}

func TestEntryEvalRuntimeError(t *testing.T) {
	code, _, errOut := runEntry(t, []string{"-e", "x + 1"}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "name 'x' is not defined")
}

func TestEntryEvalSyntaxError(t *testing.T) {
	code, _, errOut := runEntry(t, []string{"-e", "x ="}, "")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestEntryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fact.pint")
	source := `def fact(n):
    if n == 0:
        return 1
    return n * fact(n - 1)
print(fact(5))
`
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	code, out, errOut := runEntry(t, []string{path}, "")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "120\n", out)
}

func TestEntryFileExtensionInferred(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prog.pint"), []byte("print(11)\n"), 0o644))

	// The bare name resolves by trying the recognized extensions.
	code, out, errOut := runEntry(t, []string{filepath.Join(dir, "prog")}, "")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "11\n", out)
}

func TestEntryFileMissing(t *testing.T) {
	code, _, errOut := runEntry(t, []string{filepath.Join(t.TempDir(), "nope.pint")}, "")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestEntryStdin(t *testing.T) {
	code, out, errOut := runEntry(t, nil, "x = 3\nprint(x * x)\n")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "9\n", out)
}

func TestEntryUsage(t *testing.T) {
	code, _, errOut := runEntry(t, []string{"-h"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "usage")
}

func TestEntryConfigDepthLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_eval_depth: 20\n"), 0o644))

	source := "def f():\n    return f()\nf()\n"
	code, _, errOut := runEntry(t, []string{"--config", path, "-e", source}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "maximum recursion depth exceeded")
}

func TestEntryConfigMissing(t *testing.T) {
	code, _, errOut := runEntry(t, []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, "")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestEntryTokensDump(t *testing.T) {
	code, out, _ := runEntry(t, []string{"--tokens", "-e", "x = 1"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, `"="`)
}

func TestEntryParseTreeDump(t *testing.T) {
	code, out, _ := runEntry(t, []string{"--parse-tree", "-e", "x = 1\nx += 2\n"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "x = x + 2")
}
