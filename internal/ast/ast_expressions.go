package ast

import (
	"github.com/funvibe/mython/internal/token"
)

// NumberLiteral is a non-negative integer literal.
type NumberLiteral struct {
	Token token.Token
	Value int64
}

func (nl *NumberLiteral) Accept(v Visitor)      { v.VisitNumberLiteral(nl) }
func (nl *NumberLiteral) expressionNode()       {}
func (nl *NumberLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }

// StringLiteral is a quoted byte string.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// BooleanLiteral is True or False.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// NoneLiteral is the absent value.
type NoneLiteral struct {
	Token token.Token
}

func (nl *NoneLiteral) Accept(v Visitor)      { v.VisitNoneLiteral(nl) }
func (nl *NoneLiteral) expressionNode()       {}
func (nl *NoneLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NoneLiteral) GetToken() token.Token { return nl.Token }

// VariableValue resolves a dotted identifier path: the first segment in
// the current scope, every further segment in the fields of the class
// instance the previous one named.
type VariableValue struct {
	Token token.Token // the first identifier token
	Path  []string
}

func (vv *VariableValue) Accept(v Visitor)      { v.VisitVariableValue(vv) }
func (vv *VariableValue) expressionNode()       {}
func (vv *VariableValue) TokenLiteral() string  { return vv.Token.Lexeme }
func (vv *VariableValue) GetToken() token.Token { return vv.Token }

// MethodCall dispatches a method on a class instance.
// obj.method(args)
type MethodCall struct {
	Token  token.Token // the method name token
	Object Expression
	Method string
	Args   []Expression
}

func (mc *MethodCall) Accept(v Visitor)      { v.VisitMethodCall(mc) }
func (mc *MethodCall) expressionNode()       {}
func (mc *MethodCall) TokenLiteral() string  { return mc.Token.Lexeme }
func (mc *MethodCall) GetToken() token.Token { return mc.Token }

// NewInstance constructs a fresh instance of the named class. The name
// is resolved to a Class value in scope at evaluation time.
// Name(args)
type NewInstance struct {
	Token     token.Token // the class name token
	ClassName string
	Args      []Expression
}

func (ni *NewInstance) Accept(v Visitor)      { v.VisitNewInstance(ni) }
func (ni *NewInstance) expressionNode()       {}
func (ni *NewInstance) TokenLiteral() string  { return ni.Token.Lexeme }
func (ni *NewInstance) GetToken() token.Token { return ni.Token }

// Stringify renders its argument the way print would and yields the
// text as a String.
// str(expr)
type Stringify struct {
	Token    token.Token
	Argument Expression
}

func (s *Stringify) Accept(v Visitor)      { v.VisitStringify(s) }
func (s *Stringify) expressionNode()       {}
func (s *Stringify) TokenLiteral() string  { return s.Token.Lexeme }
func (s *Stringify) GetToken() token.Token { return s.Token }

// InfixExpression covers arithmetic, comparison and logical operators.
// The operator is kept as source text; the evaluator dispatches on it.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// PrefixExpression is a unary operator application, currently only 'not'.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
