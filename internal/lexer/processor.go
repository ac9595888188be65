package lexer

import (
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/pipeline"
	"github.com/pintlang/pint/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	toks := New(ctx.SourceCode).Tokens()

	for _, tok := range toks {
		if tok.Type != token.ILLEGAL {
			continue
		}
		code := diagnostics.ErrL001
		if tok.Literal == "unindent does not match any outer indentation level" {
			code = diagnostics.ErrL002
		}
		err := diagnostics.NewError(code, tok, tok.Literal)
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
	}

	ctx.Tokens = toks
	return ctx
}
