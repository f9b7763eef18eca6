package parser

import (
	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/token"
)

// Expression grammar, loosest first:
//
//	expression  = or
//	or          = and { "or" and }
//	and         = not { "and" not }
//	not         = "not" not | comparison
//	comparison  = additive [ cmp-op additive ]
//	additive    = multiplicative { ("+"|"-") multiplicative }
//	multiplicative = postfix { ("*"|"/") postfix }
//	postfix     = primary { "." Id "(" args ")" }
//	primary     = Number | String | True | False | None
//	            | "(" expression ")"
//	            | "str" "(" expression ")"
//	            | Id { "." Id } [ "(" args ")" ]
func (p *Parser) parseExpression() ast.Expression {
	return p.parseOrExpression()
}

func (p *Parser) parseOrExpression() ast.Expression {
	left := p.parseAndExpression()
	if left == nil {
		return nil
	}
	for p.peekTokenIs(token.OR) {
		p.nextToken()
		opToken := p.curToken
		p.nextToken()
		right := p.parseAndExpression()
		if right == nil {
			return nil
		}
		left = &ast.InfixExpression{Token: opToken, Left: left, Operator: "or", Right: right}
	}
	return left
}

func (p *Parser) parseAndExpression() ast.Expression {
	left := p.parseNotExpression()
	if left == nil {
		return nil
	}
	for p.peekTokenIs(token.AND) {
		p.nextToken()
		opToken := p.curToken
		p.nextToken()
		right := p.parseNotExpression()
		if right == nil {
			return nil
		}
		left = &ast.InfixExpression{Token: opToken, Left: left, Operator: "and", Right: right}
	}
	return left
}

func (p *Parser) parseNotExpression() ast.Expression {
	if p.curTokenIs(token.NOT) {
		opToken := p.curToken
		p.nextToken()
		right := p.parseNotExpression()
		if right == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: opToken, Operator: "not", Right: right}
	}
	return p.parseComparison()
}

func (p *Parser) comparisonOperator() (string, bool) {
	switch {
	case p.peekTokenIs(token.EQ):
		return "==", true
	case p.peekTokenIs(token.NOT_EQ):
		return "!=", true
	case p.peekTokenIs(token.LESS_EQ):
		return "<=", true
	case p.peekTokenIs(token.GREATER_EQ):
		return ">=", true
	case p.peekCharIs('<'):
		return "<", true
	case p.peekCharIs('>'):
		return ">", true
	}
	return "", false
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	if left == nil {
		return nil
	}
	op, ok := p.comparisonOperator()
	if !ok {
		return left
	}
	p.nextToken()
	opToken := p.curToken
	p.nextToken()
	right := p.parseAdditive()
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: opToken, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	if left == nil {
		return nil
	}
	for p.peekCharIs('+') || p.peekCharIs('-') {
		p.nextToken()
		opToken := p.curToken
		p.nextToken()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = &ast.InfixExpression{Token: opToken, Left: left, Operator: opToken.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePostfix()
	if left == nil {
		return nil
	}
	for p.peekCharIs('*') || p.peekCharIs('/') {
		p.nextToken()
		opToken := p.curToken
		p.nextToken()
		right := p.parsePostfix()
		if right == nil {
			return nil
		}
		left = &ast.InfixExpression{Token: opToken, Left: left, Operator: opToken.Lexeme, Right: right}
	}
	return left
}

// parsePostfix chains method calls onto an already-parsed receiver,
// e.g. Point(1, 2).norm().scale(3).
func (p *Parser) parsePostfix() ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}
	for p.peekCharIs('.') {
		p.nextToken() // '.'
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		nameToken := p.curToken
		if !p.peekCharIs('(') {
			p.addError(diagnostics.ErrP005, p.peekToken,
				"expected '(' after method name '%s'", nameToken.Literal)
			return nil
		}
		args := p.parseCallArgs()
		if args == nil {
			return nil
		}
		left = &ast.MethodCall{
			Token:  nameToken,
			Object: left,
			Method: nameToken.Literal.(string),
			Args:   args,
		}
	}
	return left
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.NUMBER:
		return &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Literal.(int64)}
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
	case token.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.NONE:
		return &ast.NoneLiteral{Token: p.curToken}
	case token.IDENT:
		return p.parseIdentifierExpression()
	case token.CHAR:
		if p.curCharIs('(') {
			p.nextToken()
			expr := p.parseExpression()
			if expr == nil {
				return nil
			}
			if !p.expectPeekChar(')') {
				return nil
			}
			return expr
		}
	}
	p.addError(diagnostics.ErrP005, p.curToken, "unexpected token %s in expression", p.curToken)
	return nil
}

// parseIdentifierExpression handles the dotted-path family: a variable
// reference, a field path, a method call on a path, a construction
// Name(args), and the str(expr) stringify form.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	first := p.curToken
	name := first.Literal.(string)

	if name == config.StrFuncName && p.peekCharIs('(') {
		args := p.parseCallArgs()
		if args == nil {
			return nil
		}
		if len(args) != 1 {
			p.addError(diagnostics.ErrP005, first, "str takes exactly one argument, got %d", len(args))
			return nil
		}
		return &ast.Stringify{Token: first, Argument: args[0]}
	}

	path := []string{name}
	lastToken := first
	for p.peekCharIs('.') {
		p.nextToken() // '.'
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		lastToken = p.curToken
		path = append(path, p.curToken.Literal.(string))
	}

	if !p.peekCharIs('(') {
		return &ast.VariableValue{Token: first, Path: path}
	}

	args := p.parseCallArgs()
	if args == nil {
		return nil
	}
	if len(path) == 1 {
		return &ast.NewInstance{Token: first, ClassName: path[0], Args: args}
	}
	object := &ast.VariableValue{Token: first, Path: path[:len(path)-1]}
	return &ast.MethodCall{
		Token:  lastToken,
		Object: object,
		Method: path[len(path)-1],
		Args:   args,
	}
}

// parseCallArgs parses '(' expression { ',' expression } ')' starting
// with curToken just before the '('; returns with curToken on ')'.
func (p *Parser) parseCallArgs() []ast.Expression {
	if !p.expectPeekChar('(') {
		return nil
	}
	args := []ast.Expression{}
	if p.peekCharIs(')') {
		p.nextToken()
		return args
	}
	p.nextToken()
	arg := p.parseExpression()
	if arg == nil {
		return nil
	}
	args = append(args, arg)
	for p.peekCharIs(',') {
		p.nextToken() // ','
		p.nextToken()
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}
	if !p.expectPeekChar(')') {
		return nil
	}
	return args
}
