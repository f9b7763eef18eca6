package parser

import (
	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/pipeline"
	"github.com/funvibe/mython/internal/token"
)

// Parser is a recursive-descent parser over the lexer's buffered token
// stream. Every production returns with curToken resting on the last
// token it consumed; the caller advances past statement terminators.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.curToken = stream.CurrentToken()
	p.peekToken = stream.NextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// curCharIs matches a single-character operator token by payload.
func (p *Parser) curCharIs(ch byte) bool {
	if p.curToken.Type != token.CHAR {
		return false
	}
	b, ok := p.curToken.Literal.(byte)
	return ok && b == ch
}

func (p *Parser) peekCharIs(ch byte) bool {
	if p.peekToken.Type != token.CHAR {
		return false
	}
	b, ok := p.peekToken.Literal.(byte)
	return ok && b == ch
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected next token to be %s, got %s", t, p.peekToken,
	))
	return false
}

func (p *Parser) expectPeekChar(ch byte) bool {
	if p.peekCharIs(ch) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected next token to be '%c', got %s", ch, p.peekToken,
	))
	return false
}

func (p *Parser) addError(code string, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, format, args...))
}

// ParseProgram parses the whole token stream into the root node.
// Parsing stops at the first error; the diagnostics already collected
// describe it.
func (p *Parser) ParseProgram() ast.Node {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.INDENT) {
			p.addError(diagnostics.ErrP002, p.curToken, "unexpected indent")
			return program
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return program
		}
		program.Statements = append(program.Statements, stmt)
		p.advancePastTerminator()
	}
	return program
}

// advancePastTerminator moves from the last token of a statement onto
// the first token of the next one. Line statements are terminated by a
// NEWLINE; block statements already end on a DEDENT, which needs no
// terminator of its own.
func (p *Parser) advancePastTerminator() {
	if p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	p.nextToken()
}
