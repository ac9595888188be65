package parser_test

import (
	"strings"
	"testing"

	"github.com/pintlang/pint/internal/ast"
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/lexer"
	"github.com/pintlang/pint/internal/parser"
	"github.com/pintlang/pint/internal/pipeline"
)

func parse(t *testing.T, input string) (*ast.Program, *pipeline.Context) {
	t.Helper()
	ctx := &pipeline.Context{SourceCode: input}
	pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	return ctx.AstRoot, ctx
}

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, ctx := parse(t, input)
	if ctx.Failed() {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed:\n%s\ninput:\n%s", strings.Join(msgs, "\n"), input)
	}
	return program
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_assignment", "x = 5", "x = 5\n"},
		{"precedence_product", "x = 1 + 2 * 3", "x = (1 + (2 * 3))\n"},
		{"precedence_grouping", "x = (1 + 2) * 3", "x = ((1 + 2) * 3)\n"},
		{"precedence_shift", "x = 1 + 2 << 3", "x = ((1 + 2) << 3)\n"},
		{"precedence_bitwise", "x = 1 | 2 ^ 3 & 4", "x = (1 | (2 ^ (3 & 4)))\n"},
		{"precedence_compare", "x = 1 | 2 == 3", "x = ((1 | 2) == 3)\n"},
		{"precedence_boolean", "x = a or b and c", "x = (a or (b and c))\n"},
		{"unary_minus", "x = -5 * 2", "x = ((-5) * 2)\n"},
		{"unary_not", "x = not a == b", "x = (not (a == b))\n"},
		{"aug_assign_desugars", "x += 2", "x = (x + 2)\n"},
		{"aug_assign_shift", "x <<= n + 1", "x = (x << (n + 1))\n"},
		{"expression_statement", "1 + 2", "(1 + 2)\n"},
		{"call", "y = f(1, g(2), 3)", "y = f(1, g(2), 3)\n"},
		{"call_no_args", "y = f()", "y = f()\n"},
		{"string_literal", `s = "hi"`, "s = \"hi\"\n"},
		{"float_literal", "f = 1.5", "f = 1.5\n"},
		{"literals", "x = True\ny = False\nz = None", "x = True\ny = False\nz = None\n"},
		{"inline_while", "while True: break", "while True: break\n"},
		{"inline_if", "if x: pass", "if x: pass\n"},
		{"block_if_else", "if x:\n    a = 1\nelse:\n    a = 2", "if x: a = 1 else: a = 2\n"},
		{"block_while", "while i < 3:\n    i += 1", "while (i < 3): i = (i + 1)\n"},
		{"def", "def add(a, b):\n    return a + b", "def add(a, b): return (a + b)\n"},
		{"def_no_params", "def f():\n    return", "def f(): return\n"},
		{"bare_return", "def f():\n    return\nx = 1", "def f(): return\nx = 1\n"},
		{"nested_def", "def outer():\n    def inner():\n        pass\n    return inner",
			"def outer(): def inner(): pass return inner\n"},
		{"control_statements", "while x:\n    break\n    continue\n    pass",
			"while x: break continue pass\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program := mustParse(t, tc.input)
			if got := program.String(); got != tc.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tc.want)
			}
		})
	}
}

func TestElifNestsInOrelse(t *testing.T) {
	program := mustParse(t, `if a:
    x = 1
elif b:
    x = 2
else:
    x = 3`)

	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	outer := program.Statements[0].(*ast.IfStatement)
	if len(outer.Orelse) != 1 {
		t.Fatalf("outer orelse holds %d statements, want the nested if only", len(outer.Orelse))
	}
	nested, ok := outer.Orelse[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("orelse[0] is %T, want *ast.IfStatement", outer.Orelse[0])
	}
	if len(nested.Orelse) != 1 {
		t.Errorf("nested orelse holds %d statements, want 1", len(nested.Orelse))
	}
}

func TestAssignTargetHasStoreContext(t *testing.T) {
	program := mustParse(t, "x = 5")
	assign := program.Statements[0].(*ast.AssignStatement)
	if assign.Target.Ctx != ast.Store {
		t.Error("assignment target must carry store context")
	}

	program = mustParse(t, "x = y")
	assign = program.Statements[0].(*ast.AssignStatement)
	if assign.Value.(*ast.Name).Ctx != ast.Load {
		t.Error("assignment value must carry load context")
	}
}

func TestAugAssignBuildsLoadAndStoreNames(t *testing.T) {
	program := mustParse(t, "x += 2")
	assign := program.Statements[0].(*ast.AssignStatement)
	if assign.Target.Ctx != ast.Store {
		t.Error("desugared target must carry store context")
	}
	binOp, ok := assign.Value.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("desugared value is %T, want *ast.InfixExpression", assign.Value)
	}
	load, ok := binOp.Left.(*ast.Name)
	if !ok || load.Ctx != ast.Load {
		t.Error("desugared left operand must be a load-context name")
	}
	if binOp.Operator != "+" {
		t.Errorf("desugared operator %q, want +", binOp.Operator)
	}
}

func TestSyntaxErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing_value", "x ="},
		{"missing_colon_if", "if x\n    pass"},
		{"missing_colon_def", "def f()\n    pass"},
		{"unclosed_paren", "x = (1 + 2"},
		{"bad_operator", "x = 1 ! 2"},
		{"call_missing_comma", "f(1 2)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ctx := parse(t, tc.input)
			if !ctx.Failed() {
				t.Errorf("input %q parsed without diagnostics", tc.input)
			}
		})
	}
}

// Unfinished block statements report ErrP002 so the shell knows to keep
// reading instead of reporting a syntax error.
func TestUnexpectedEOFIsDistinguished(t *testing.T) {
	unfinished := []string{
		"if x:",
		"while x:",
		"def f(a, b):",
		"if x:\n    pass\nelse:",
	}
	for _, input := range unfinished {
		_, ctx := parse(t, input)
		if !ctx.HasError(diagnostics.ErrP002) {
			t.Errorf("input %q: expected ErrP002, got %v", input, ctx.Errors)
		}
	}

	finished := "if x:\n    pass"
	_, ctx := parse(t, finished)
	if ctx.Failed() {
		t.Errorf("input %q reported diagnostics: %v", finished, ctx.Errors)
	}
}

func TestErrorPositions(t *testing.T) {
	_, ctx := parse(t, "x = 1\nif y\n    pass\n")
	if !ctx.Failed() {
		t.Fatal("expected a diagnostic")
	}
	err := ctx.Errors[0]
	if err.Line != 2 {
		t.Errorf("diagnostic at line %d, want 2", err.Line)
	}
}
