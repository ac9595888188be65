package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the tunable runtime options of the interpreter, loadable from
// a YAML file. Zero values fall back to the defaults above, so a partial
// file only overrides what it names.
type Settings struct {
	// Prompt is printed before each fresh REPL input line.
	Prompt string `yaml:"prompt,omitempty"`

	// ContinuationPrompt is printed while a block statement is still open.
	ContinuationPrompt string `yaml:"continuation_prompt,omitempty"`

	// MaxEvalDepth bounds evaluation nesting. 0 means the default.
	MaxEvalDepth int `yaml:"max_eval_depth,omitempty"`

	// PrintParseTree dumps the parsed AST before evaluating, as if
	// --parse-tree was passed on every input.
	PrintParseTree bool `yaml:"print_parse_tree,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Prompt:             DefaultPrompt,
		ContinuationPrompt: DefaultContinuationPrompt,
		MaxEvalDepth:       DefaultMaxEvalDepth,
	}
}

// LoadSettings reads a settings file and overlays it on the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.ContinuationPrompt == "" {
		s.ContinuationPrompt = DefaultContinuationPrompt
	}
	if s.MaxEvalDepth <= 0 {
		s.MaxEvalDepth = DefaultMaxEvalDepth
	}
	return s, nil
}

// LoadUserSettings looks for the per-user settings file in the home
// directory. A missing file is not an error.
func LoadUserSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSettings()
	}
	path := filepath.Join(home, SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		return DefaultSettings()
	}
	s, err := LoadSettings(path)
	if err != nil {
		return DefaultSettings()
	}
	return s
}
