package evaluator

import (
	"io"
	"os"

	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
)

// Evaluator walks the AST. It doubles as the execution context of the
// object model: Out is the single byte sink the program may write to.
type Evaluator struct {
	Out io.Writer

	// classes is the program-wide registry of class definitions. Method
	// scopes hold only parameters and self, so constructing a class from
	// inside a method resolves its name here when the scope has no
	// binding. Registration order guarantees a parent is present before
	// any child referencing it.
	classes map[string]*Class

	// evalDepth tracks the current nesting depth of Eval calls to prevent stack overflow
	evalDepth int
}

func New() *Evaluator {
	return &Evaluator{
		Out:     os.Stdout,
		classes: make(map[string]*Class),
	}
}

// lookupClassValue resolves a class name through the scope first and
// the registry second.
func (e *Evaluator) lookupClassValue(name string, env *Environment) (Object, bool) {
	if obj, ok := env.Get(name); ok {
		return obj, true
	}
	if cls, ok := e.classes[name]; ok {
		return cls, true
	}
	return nil, false
}

// Eval executes node against env and returns its value. A *ReturnValue
// result is the return signal on its way to the enclosing method body;
// an *Error result terminates evaluation.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > config.MaxEvalDepth {
		return newError("maximum evaluation depth exceeded (%d)", config.MaxEvalDepth)
	}

	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, env)
	case *ast.FieldAssignStatement:
		return e.evalFieldAssignStatement(node, env)
	case *ast.PrintStatement:
		return e.evalPrintStatement(node, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node, env)
	case *ast.IfStatement:
		return e.evalIfStatement(node, env)
	case *ast.ClassStatement:
		return e.evalClassStatement(node, env)

	case *ast.NumberLiteral:
		return &Number{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.NoneLiteral:
		return NONE
	case *ast.VariableValue:
		return e.evalVariableValue(node, env)
	case *ast.MethodCall:
		return e.evalMethodCall(node, env)
	case *ast.NewInstance:
		return e.evalNewInstance(node, env)
	case *ast.Stringify:
		return e.evalStringify(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	}

	return newError("unknown node type %T", node)
}

// evalProgram runs top-level statements in source order. A return
// signal escaping any method is a user error here.
func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object = NONE
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		switch result := result.(type) {
		case *Error:
			return result
		case *ReturnValue:
			tok := stmt.GetToken()
			return newErrorWithLocation(tok.Line, tok.Column, "return outside of a method")
		}
	}
	return result
}

// evalBlockStatement is the compound statement: statements execute in
// order, the block yields None, and return signals and errors pass
// through without being swallowed.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *Environment) Object {
	for _, stmt := range block.Statements {
		result := e.Eval(stmt, env)
		if result != nil {
			rt := result.Type()
			if rt == RETURN_VALUE_OBJ || rt == ERROR_OBJ {
				return result
			}
		}
	}
	return NONE
}

// CallMethod resolves methodName along inst's class chain, binds the
// actual arguments positionally into a fresh scope together with self,
// and executes the body. The method-body frame is the only place the
// return signal is unwrapped; a method without an executed return
// yields None.
func (e *Evaluator) CallMethod(inst *ClassInstance, methodName string, args []Object) Object {
	method := inst.Class.GetMethod(methodName)
	if method == nil || len(method.FormalParams) != len(args) {
		return newError("method %s(%d args) is not implemented for class '%s'",
			methodName, len(args), inst.Class.Name)
	}
	callEnv := NewEnvironment()
	for i, param := range method.FormalParams {
		callEnv.Set(param, args[i])
	}
	callEnv.Set(config.SelfName, inst)

	result := e.Eval(method.Body, callEnv)
	switch result := result.(type) {
	case *Error:
		return result
	case *ReturnValue:
		return result.Value
	}
	return NONE
}
