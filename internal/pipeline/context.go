package pipeline

import (
	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/token"
)

// Processor is a single stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the lexer's output as the parser consumes it: peek the
// front token, or advance and get the new front.
type TokenStream interface {
	CurrentToken() token.Token
	NextToken() token.Token
}

// PipelineContext carries a compilation unit through the stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// TokenStream is filled by the lexer stage.
	TokenStream TokenStream

	// AstRoot is filled by the parser stage.
	AstRoot ast.Node

	Errors []*diagnostics.Diagnostic
}
