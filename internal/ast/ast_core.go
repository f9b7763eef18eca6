package ast

import (
	"github.com/funvibe/mython/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// BlockStatement is a compound of statements sharing one scope, e.g. an
// indented suite. Executing it runs each statement in source order.
type BlockStatement struct {
	Token      token.Token // the token opening the block
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

// Visitor walks the AST; one method per concrete node type.
type Visitor interface {
	VisitProgram(node *Program)
	VisitBlockStatement(node *BlockStatement)
	VisitAssignStatement(node *AssignStatement)
	VisitFieldAssignStatement(node *FieldAssignStatement)
	VisitPrintStatement(node *PrintStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitIfStatement(node *IfStatement)
	VisitClassStatement(node *ClassStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNoneLiteral(node *NoneLiteral)
	VisitVariableValue(node *VariableValue)
	VisitMethodCall(node *MethodCall)
	VisitNewInstance(node *NewInstance)
	VisitStringify(node *Stringify)
	VisitInfixExpression(node *InfixExpression)
	VisitPrefixExpression(node *PrefixExpression)
}
