package ast

import (
	"github.com/funvibe/mython/internal/token"
)

// AssignStatement represents a simple binding.
// x = expr
type AssignStatement struct {
	Token token.Token // the identifier token
	Name  string
	Value Expression
}

func (as *AssignStatement) Accept(v Visitor)      { v.VisitAssignStatement(as) }
func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token { return as.Token }

// FieldAssignStatement assigns into a field of a class instance.
// a.b.c = expr — Object is the dotted path up to the last segment.
type FieldAssignStatement struct {
	Token  token.Token
	Object *VariableValue
	Field  string
	Value  Expression
}

func (fa *FieldAssignStatement) Accept(v Visitor)      { v.VisitFieldAssignStatement(fa) }
func (fa *FieldAssignStatement) statementNode()        {}
func (fa *FieldAssignStatement) TokenLiteral() string  { return fa.Token.Lexeme }
func (fa *FieldAssignStatement) GetToken() token.Token { return fa.Token }

// PrintStatement writes its arguments to the program output sink.
// print e1, e2, ...
type PrintStatement struct {
	Token token.Token // the 'print' token
	Args  []Expression
}

func (ps *PrintStatement) Accept(v Visitor)      { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// ReturnStatement unwinds to the nearest enclosing method body.
// return expr
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// IfStatement with an optional else branch.
// if cond: ... else: ...
type IfStatement struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no else
}

func (is *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// MethodDef is a single method inside a class body.
// def name(params): ...
type MethodDef struct {
	Token  token.Token // the 'def' token
	Name   string
	Params []string
	Body   *BlockStatement
}

// ClassStatement introduces a class with single inheritance.
// class Name: / class Name(Parent):
type ClassStatement struct {
	Token   token.Token // the 'class' token
	Name    string
	Parent  string // empty when the class has no parent
	Methods []*MethodDef
}

func (cs *ClassStatement) Accept(v Visitor)      { v.VisitClassStatement(cs) }
func (cs *ClassStatement) statementNode()        {}
func (cs *ClassStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ClassStatement) GetToken() token.Token { return cs.Token }

// ExpressionStatement is an expression in statement position, e.g. a
// bare method call.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
