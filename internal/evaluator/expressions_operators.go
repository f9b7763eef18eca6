package evaluator

import (
	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
)

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	// and/or decide on the left operand alone whenever they can; the
	// right operand must not be touched before that decision.
	switch node.Operator {
	case "and":
		return e.evalAndExpression(node, env)
	case "or":
		return e.evalOrExpression(node, env)
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "+":
		return e.evalAdd(left, right)
	case "-":
		return e.evalSub(left, right)
	case "*":
		return e.evalMult(left, right)
	case "/":
		return e.evalDiv(left, right)
	case "==", "!=", "<", ">", "<=", ">=":
		return e.evalComparison(node.Operator, left, right)
	}
	tok := node.GetToken()
	return newErrorWithLocation(tok.Line, tok.Column, "unknown operator: %s", node.Operator)
}

// operandTrue is the logical operators' notion of truth: equality with
// Bool True, not the general truthiness coercion. A non-Bool operand
// that cannot be compared with a Bool is therefore an error.
func (e *Evaluator) operandTrue(obj Object) (bool, *Error) {
	return e.ObjectsEqual(obj, TRUE)
}

func (e *Evaluator) evalAndExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	leftTrue, errObj := e.operandTrue(left)
	if errObj != nil {
		return errObj
	}
	if !leftTrue {
		return FALSE
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}
	rightTrue, errObj := e.operandTrue(right)
	if errObj != nil {
		return errObj
	}
	return nativeBoolToBooleanObject(rightTrue)
}

func (e *Evaluator) evalOrExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	leftTrue, errObj := e.operandTrue(left)
	if errObj != nil {
		return errObj
	}
	if leftTrue {
		return TRUE
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}
	rightTrue, errObj := e.operandTrue(right)
	if errObj != nil {
		return errObj
	}
	return nativeBoolToBooleanObject(rightTrue)
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *Environment) Object {
	if node.Operator != "not" {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column, "unknown operator: %s", node.Operator)
	}
	value := e.Eval(node.Right, env)
	if isError(value) {
		return value
	}
	b, ok := value.(*Boolean)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column, "operand of 'not' is not a Bool")
	}
	return nativeBoolToBooleanObject(!b.Value)
}

// evalAdd: numbers add, strings concatenate, a class instance on the
// left dispatches to __add__ with one argument.
func (e *Evaluator) evalAdd(left, right Object) Object {
	if isNone(left) || isNone(right) {
		return newError("cannot add/concatenate objects")
	}
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value + r.Value}
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}
		}
	}
	if inst, ok := left.(*ClassInstance); ok {
		if !inst.HasMethod(config.AddMethod, 1) {
			return newError("cannot add/concatenate objects")
		}
		return e.CallMethod(inst, config.AddMethod, []Object{right})
	}
	return newError("cannot add/concatenate objects")
}

func (e *Evaluator) evalSub(left, right Object) Object {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value - r.Value}
		}
	}
	return newError("cannot sub objects")
}

func (e *Evaluator) evalMult(left, right Object) Object {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value * r.Value}
		}
	}
	return newError("cannot mult objects")
}

func (e *Evaluator) evalDiv(left, right Object) Object {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			if r.Value == 0 {
				return newError("cannot div by zero")
			}
			return &Number{Value: l.Value / r.Value}
		}
	}
	return newError("cannot div objects")
}

func (e *Evaluator) evalComparison(operator string, left, right Object) Object {
	var result bool
	var errObj *Error
	switch operator {
	case "==":
		result, errObj = e.ObjectsEqual(left, right)
	case "!=":
		result, errObj = e.objectsNotEqual(left, right)
	case "<":
		result, errObj = e.ObjectsLess(left, right)
	case ">":
		result, errObj = e.objectsGreater(left, right)
	case "<=":
		result, errObj = e.objectsLessOrEqual(left, right)
	case ">=":
		result, errObj = e.objectsGreaterOrEqual(left, right)
	}
	if errObj != nil {
		return errObj
	}
	return nativeBoolToBooleanObject(result)
}
