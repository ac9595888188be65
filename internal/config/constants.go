package config

const SourceFileExt = ".pint"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".pint", ".py"}

// Built-in function names
const (
	PrintFuncName = "print"
	LenFuncName   = "len"
	TypeFuncName  = "type"
)

// DefaultMaxEvalDepth bounds the nesting depth of evaluation calls.
// Prevents Go stack overflow from runaway recursion in user programs.
const DefaultMaxEvalDepth = 10000

// Default REPL prompts, matching the conventional interactive Python shell.
const (
	DefaultPrompt             = ">>> "
	DefaultContinuationPrompt = "... "
)

// SettingsFileName is the per-user settings file looked up in the home
// directory when no --config flag is given.
const SettingsFileName = ".pintrc.yaml"
