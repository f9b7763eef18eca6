package evaluator

import (
	"github.com/funvibe/mython/internal/config"
)

// IsTrue is the truthiness coercion of the object model: None is false,
// Bool is its value, a Number is true when nonzero, a String when
// nonempty, and everything else — classes and instances included — is
// false.
func IsTrue(obj Object) bool {
	switch v := obj.(type) {
	case *Boolean:
		return v.Value
	case *Number:
		return v.Value != 0
	case *String:
		return v.Value != ""
	default:
		return false
	}
}

// ObjectsEqual implements the equality protocol. Two Nones are equal,
// matching builtin variants compare payloads, and a class instance on
// the left delegates to its __eq__ method, which must yield a Bool.
func (e *Evaluator) ObjectsEqual(left, right Object) (bool, *Error) {
	if isNone(left) && isNone(right) {
		return true, nil
	}
	if l, ok := left.(*Boolean); ok {
		if r, ok := right.(*Boolean); ok {
			return l.Value == r.Value, nil
		}
	}
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return l.Value == r.Value, nil
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return l.Value == r.Value, nil
		}
	}
	if inst, ok := left.(*ClassInstance); ok {
		result := e.CallMethod(inst, config.EqMethod, []Object{right})
		if errObj, ok := result.(*Error); ok {
			return false, errObj
		}
		if b, ok := result.(*Boolean); ok {
			return b.Value, nil
		}
		return false, newError("cannot compare objects for equality")
	}
	return false, newError("cannot compare objects for equality")
}

// ObjectsLess implements the ordering protocol: payload comparison for
// matching builtin variants (lexicographic for strings), __lt__ dispatch
// for class instances.
func (e *Evaluator) ObjectsLess(left, right Object) (bool, *Error) {
	if l, ok := left.(*Boolean); ok {
		if r, ok := right.(*Boolean); ok {
			return !l.Value && r.Value, nil
		}
	}
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return l.Value < r.Value, nil
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return l.Value < r.Value, nil
		}
	}
	if inst, ok := left.(*ClassInstance); ok {
		result := e.CallMethod(inst, config.LtMethod, []Object{right})
		if errObj, ok := result.(*Error); ok {
			return false, errObj
		}
		if b, ok := result.(*Boolean); ok {
			return b.Value, nil
		}
		return false, newError("cannot compare objects for less")
	}
	return false, newError("cannot compare objects for less")
}

func (e *Evaluator) objectsNotEqual(left, right Object) (bool, *Error) {
	eq, err := e.ObjectsEqual(left, right)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func (e *Evaluator) objectsGreater(left, right Object) (bool, *Error) {
	less, err := e.ObjectsLess(left, right)
	if err != nil {
		return false, err
	}
	eq, err := e.ObjectsEqual(left, right)
	if err != nil {
		return false, err
	}
	return !less && !eq, nil
}

func (e *Evaluator) objectsLessOrEqual(left, right Object) (bool, *Error) {
	less, err := e.ObjectsLess(left, right)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return e.ObjectsEqual(left, right)
}

func (e *Evaluator) objectsGreaterOrEqual(left, right Object) (bool, *Error) {
	less, err := e.ObjectsLess(left, right)
	if err != nil {
		return false, err
	}
	return !less, nil
}
