package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pintlang/pint/internal/config"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := config.DefaultSettings()
	assert.Equal(t, config.DefaultPrompt, s.Prompt)
	assert.Equal(t, config.DefaultContinuationPrompt, s.ContinuationPrompt)
	assert.Equal(t, config.DefaultMaxEvalDepth, s.MaxEvalDepth)
	assert.False(t, s.PrintParseTree)
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
prompt: "pint> "
continuation_prompt: "....> "
max_eval_depth: 500
print_parse_tree: true
`)

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "pint> ", s.Prompt)
	assert.Equal(t, "....> ", s.ContinuationPrompt)
	assert.Equal(t, 500, s.MaxEvalDepth)
	assert.True(t, s.PrintParseTree)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "max_eval_depth: 42\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 42, s.MaxEvalDepth)
	assert.Equal(t, config.DefaultPrompt, s.Prompt)
	assert.Equal(t, config.DefaultContinuationPrompt, s.ContinuationPrompt)
}

func TestLoadSettingsInvalidDepthFallsBack(t *testing.T) {
	path := writeSettings(t, "max_eval_depth: -1\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxEvalDepth, s.MaxEvalDepth)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	path := writeSettings(t, "prompt: [unclosed\n")

	_, err := config.LoadSettings(path)
	assert.Error(t, err)
}
