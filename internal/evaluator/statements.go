package evaluator

import (
	"bytes"

	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
)

func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	// The statement yields the very object now living in the scope slot.
	return env.Set(node.Name, value)
}

func (e *Evaluator) evalFieldAssignStatement(node *ast.FieldAssignStatement, env *Environment) Object {
	object := e.Eval(node.Object, env)
	if isError(object) {
		return object
	}
	inst, ok := object.(*ClassInstance)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"'%s' is not a class instance", node.Object.Path[len(node.Object.Path)-1])
	}
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	return inst.Fields.Set(node.Field, value)
}

// evalPrintStatement renders the arguments separated by single spaces
// and terminated by a newline. The line is composed in a buffer and
// written to the sink in one piece; the statement yields the printed
// text as a String so the output is observable to callers.
func (e *Evaluator) evalPrintStatement(node *ast.PrintStatement, env *Environment) Object {
	var out bytes.Buffer
	for i, arg := range node.Args {
		if i > 0 {
			out.WriteByte(' ')
		}
		value := e.Eval(arg, env)
		if isError(value) {
			return value
		}
		text, errObj := e.RenderValue(value)
		if errObj != nil {
			return errObj
		}
		out.WriteString(text)
	}
	out.WriteByte('\n')
	if e.Out != nil {
		if _, err := e.Out.Write(out.Bytes()); err != nil {
			return newError("cannot write to output: %s", err)
		}
	}
	return &String{Value: out.String()}
}

func (e *Evaluator) evalReturnStatement(node *ast.ReturnStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	return &ReturnValue{Value: value}
}

// evalIfStatement requires the condition to evaluate to a Bool. The
// taken branch's result propagates when it is not None, which is how a
// return signal travels out of a nested branch.
func (e *Evaluator) evalIfStatement(node *ast.IfStatement, env *Environment) Object {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}
	cond, ok := condition.(*Boolean)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column, "if condition is not a Bool")
	}
	if cond.Value {
		result := e.Eval(node.Consequence, env)
		if !isNone(result) {
			return result
		}
	} else if node.Alternative != nil {
		result := e.Eval(node.Alternative, env)
		if !isNone(result) {
			return result
		}
	}
	return NONE
}

// evalClassStatement builds the class value and installs it under the
// class name. The parent must already be registered, which guarantees
// it outlives every child referencing it.
func (e *Evaluator) evalClassStatement(node *ast.ClassStatement, env *Environment) Object {
	var parent *Class
	if node.Parent != "" {
		obj, ok := e.lookupClassValue(node.Parent, env)
		if !ok {
			tok := node.GetToken()
			return newErrorWithLocation(tok.Line, tok.Column,
				"identifier '%s' is undefined", node.Parent)
		}
		parent, ok = obj.(*Class)
		if !ok {
			tok := node.GetToken()
			return newErrorWithLocation(tok.Line, tok.Column,
				"'%s' is not a class", node.Parent)
		}
	}
	methods := make([]*Method, 0, len(node.Methods))
	for _, def := range node.Methods {
		methods = append(methods, &Method{
			Name:         def.Name,
			FormalParams: def.Params,
			Body:         def.Body,
		})
	}
	cls := NewClass(node.Name, methods, parent)
	e.classes[node.Name] = cls
	return env.Set(node.Name, cls)
}

func (e *Evaluator) evalVariableValue(node *ast.VariableValue, env *Environment) Object {
	fields := env
	for i := 0; i+1 < len(node.Path); i++ {
		obj, ok := fields.Get(node.Path[i])
		if !ok {
			tok := node.GetToken()
			return newErrorWithLocation(tok.Line, tok.Column,
				"identifier '%s' is undefined", node.Path[i])
		}
		inst, ok := obj.(*ClassInstance)
		if !ok {
			tok := node.GetToken()
			return newErrorWithLocation(tok.Line, tok.Column,
				"'%s' is not a class instance", node.Path[i])
		}
		fields = inst.Fields
	}
	last := node.Path[len(node.Path)-1]
	obj, ok := fields.Get(last)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"identifier '%s' is undefined", last)
	}
	return obj
}

func (e *Evaluator) evalMethodCall(node *ast.MethodCall, env *Environment) Object {
	object := e.Eval(node.Object, env)
	if isError(object) {
		return object
	}
	inst, ok := object.(*ClassInstance)
	if !ok || !inst.HasMethod(node.Method, len(node.Args)) {
		// Calling a missing method, or a method on a non-instance,
		// quietly yields None. Arguments are not evaluated.
		return NONE
	}
	args, errObj := e.evalExpressions(node.Args, env)
	if errObj != nil {
		return errObj
	}
	return e.CallMethod(inst, node.Method, args)
}

// evalNewInstance allocates a fresh instance with empty fields and runs
// __init__ when one with matching arity exists; its result is ignored.
func (e *Evaluator) evalNewInstance(node *ast.NewInstance, env *Environment) Object {
	obj, ok := e.lookupClassValue(node.ClassName, env)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"identifier '%s' is undefined", node.ClassName)
	}
	cls, ok := obj.(*Class)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"'%s' is not a class", node.ClassName)
	}
	inst := NewClassInstance(cls)
	if inst.HasMethod(config.InitMethod, len(node.Args)) {
		args, errObj := e.evalExpressions(node.Args, env)
		if errObj != nil {
			return errObj
		}
		if result := e.CallMethod(inst, config.InitMethod, args); isError(result) {
			return result
		}
	}
	return inst
}

func (e *Evaluator) evalStringify(node *ast.Stringify, env *Environment) Object {
	value := e.Eval(node.Argument, env)
	if isError(value) {
		return value
	}
	text, errObj := e.RenderValue(value)
	if errObj != nil {
		return errObj
	}
	return &String{Value: text}
}

// evalExpressions evaluates arguments strictly left to right.
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *Environment) ([]Object, *Error) {
	result := make([]Object, 0, len(exprs))
	for _, expr := range exprs {
		value := e.Eval(expr, env)
		if errObj, ok := value.(*Error); ok {
			return nil, errObj
		}
		result = append(result, value)
	}
	return result, nil
}
