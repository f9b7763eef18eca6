// Package prettyprinter renders an AST as an indented tree, one node
// per line. The output backs `mython ast` and the parser tests.
package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/mython/internal/ast"
)

type TreePrinter struct {
	sb    strings.Builder
	depth int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (tp *TreePrinter) String() string {
	return tp.sb.String()
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	tp.sb.WriteString(strings.Repeat("  ", tp.depth))
	fmt.Fprintf(&tp.sb, format, args...)
	tp.sb.WriteByte('\n')
}

func (tp *TreePrinter) nested(node ast.Node) {
	tp.depth++
	node.Accept(tp)
	tp.depth--
}

func (tp *TreePrinter) VisitProgram(node *ast.Program) {
	tp.line("Program")
	for _, stmt := range node.Statements {
		tp.nested(stmt)
	}
}

func (tp *TreePrinter) VisitBlockStatement(node *ast.BlockStatement) {
	tp.line("Block")
	for _, stmt := range node.Statements {
		tp.nested(stmt)
	}
}

func (tp *TreePrinter) VisitAssignStatement(node *ast.AssignStatement) {
	tp.line("Assign %s", node.Name)
	tp.nested(node.Value)
}

func (tp *TreePrinter) VisitFieldAssignStatement(node *ast.FieldAssignStatement) {
	tp.line("FieldAssign %s.%s", strings.Join(node.Object.Path, "."), node.Field)
	tp.nested(node.Value)
}

func (tp *TreePrinter) VisitPrintStatement(node *ast.PrintStatement) {
	tp.line("Print")
	for _, arg := range node.Args {
		tp.nested(arg)
	}
}

func (tp *TreePrinter) VisitReturnStatement(node *ast.ReturnStatement) {
	tp.line("Return")
	tp.nested(node.Value)
}

func (tp *TreePrinter) VisitIfStatement(node *ast.IfStatement) {
	tp.line("If")
	tp.nested(node.Condition)
	tp.nested(node.Consequence)
	if node.Alternative != nil {
		tp.depth++
		tp.line("Else")
		tp.depth--
		tp.nested(node.Alternative)
	}
}

func (tp *TreePrinter) VisitClassStatement(node *ast.ClassStatement) {
	if node.Parent != "" {
		tp.line("Class %s(%s)", node.Name, node.Parent)
	} else {
		tp.line("Class %s", node.Name)
	}
	for _, method := range node.Methods {
		tp.depth++
		tp.line("Method %s(%s)", method.Name, strings.Join(method.Params, ", "))
		tp.nested(method.Body)
		tp.depth--
	}
}

func (tp *TreePrinter) VisitExpressionStatement(node *ast.ExpressionStatement) {
	tp.line("ExpressionStatement")
	tp.nested(node.Expression)
}

func (tp *TreePrinter) VisitNumberLiteral(node *ast.NumberLiteral) {
	tp.line("Number %d", node.Value)
}

func (tp *TreePrinter) VisitStringLiteral(node *ast.StringLiteral) {
	tp.line("String %q", node.Value)
}

func (tp *TreePrinter) VisitBooleanLiteral(node *ast.BooleanLiteral) {
	if node.Value {
		tp.line("Bool True")
	} else {
		tp.line("Bool False")
	}
}

func (tp *TreePrinter) VisitNoneLiteral(node *ast.NoneLiteral) {
	tp.line("None")
}

func (tp *TreePrinter) VisitVariableValue(node *ast.VariableValue) {
	tp.line("Variable %s", strings.Join(node.Path, "."))
}

func (tp *TreePrinter) VisitMethodCall(node *ast.MethodCall) {
	tp.line("MethodCall %s", node.Method)
	tp.nested(node.Object)
	for _, arg := range node.Args {
		tp.nested(arg)
	}
}

func (tp *TreePrinter) VisitNewInstance(node *ast.NewInstance) {
	tp.line("NewInstance %s", node.ClassName)
	for _, arg := range node.Args {
		tp.nested(arg)
	}
}

func (tp *TreePrinter) VisitStringify(node *ast.Stringify) {
	tp.line("Stringify")
	tp.nested(node.Argument)
}

func (tp *TreePrinter) VisitInfixExpression(node *ast.InfixExpression) {
	tp.line("Infix %s", node.Operator)
	tp.nested(node.Left)
	tp.nested(node.Right)
}

func (tp *TreePrinter) VisitPrefixExpression(node *ast.PrefixExpression) {
	tp.line("Prefix %s", node.Operator)
	tp.nested(node.Right)
}
