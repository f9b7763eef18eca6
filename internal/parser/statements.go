package parser

import (
	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.CLASS:
		return p.parseClassStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement covers assignments, field assignments and bare
// expression statements. The left-hand side is parsed as an expression
// first; a following '=' turns it into an assignment, which requires
// the expression to be a plain dotted path.
func (p *Parser) parseSimpleStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if !p.peekCharIs('=') {
		return &ast.ExpressionStatement{Token: tok, Expression: expr}
	}

	target, ok := expr.(*ast.VariableValue)
	if !ok {
		p.addError(diagnostics.ErrP002, p.peekToken, "invalid assignment target")
		return nil
	}
	p.nextToken() // '='
	p.nextToken() // first token of the value
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	if len(target.Path) == 1 {
		return &ast.AssignStatement{Token: target.Token, Name: target.Path[0], Value: value}
	}
	object := &ast.VariableValue{Token: target.Token, Path: target.Path[:len(target.Path)-1]}
	field := target.Path[len(target.Path)-1]
	return &ast.FieldAssignStatement{Token: target.Token, Object: object, Field: field, Value: value}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}
	// A bare print emits just the newline.
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.EOF) {
		return stmt
	}
	p.nextToken()
	arg := p.parseExpression()
	if arg == nil {
		return nil
	}
	stmt.Args = append(stmt.Args, arg)
	for p.peekCharIs(',') {
		p.nextToken() // ','
		p.nextToken()
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		stmt.Args = append(stmt.Args, arg)
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression()
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression()
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeekChar(':') {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()
	if stmt.Consequence == nil {
		return nil
	}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeekChar(':') {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
		if stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

// parseBlockStatement parses an indented suite. Entered with curToken
// on the ':' opening the block; returns with curToken on the matching
// DEDENT.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.DEDENT) {
		if p.curTokenIs(token.EOF) {
			p.addError(diagnostics.ErrP002, p.curToken, "unexpected end of input inside a block")
			return nil
		}
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		if p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		p.nextToken()
	}
	return block
}

// parseClassStatement parses a class with an optional parent and a body
// of method definitions. Entered on the 'class' token; returns with
// curToken on the DEDENT closing the class body.
func (p *Parser) parseClassStatement() ast.Statement {
	stmt := &ast.ClassStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal.(string)
	if p.peekCharIs('(') {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Parent = p.curToken.Literal.(string)
		if !p.expectPeekChar(')') {
			return nil
		}
	}
	if !p.expectPeekChar(':') {
		return nil
	}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.DEDENT) {
		if p.curTokenIs(token.EOF) {
			p.addError(diagnostics.ErrP003, p.curToken, "unexpected end of input inside class '%s'", stmt.Name)
			return nil
		}
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(token.DEF) {
			p.addError(diagnostics.ErrP003, p.curToken,
				"a class body may contain only method definitions, got %s", p.curToken)
			return nil
		}
		method := p.parseMethodDef()
		if method == nil {
			return nil
		}
		stmt.Methods = append(stmt.Methods, method)
		if p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		p.nextToken()
	}
	return stmt
}

// parseMethodDef parses one 'def name(params):' definition. Entered on
// the 'def' token; returns with curToken on the DEDENT closing the
// method body.
func (p *Parser) parseMethodDef() *ast.MethodDef {
	def := &ast.MethodDef{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	def.Name = p.curToken.Literal.(string)
	if !p.expectPeekChar('(') {
		return nil
	}
	if !p.peekCharIs(')') {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		def.Params = append(def.Params, p.curToken.Literal.(string))
		for p.peekCharIs(',') {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			def.Params = append(def.Params, p.curToken.Literal.(string))
		}
	}
	if !p.expectPeekChar(')') {
		return nil
	}
	if !p.expectPeekChar(':') {
		return nil
	}
	def.Body = p.parseBlockStatement()
	if def.Body == nil {
		return nil
	}
	return def
}
