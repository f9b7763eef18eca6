package evaluator

import (
	"github.com/funvibe/mython/internal/config"
)

// RenderValue produces the print representation of a value. A class
// instance defining __str__ with no parameters is rendered through it;
// otherwise the opaque instance representation is used. None renders as
// the literal text None.
func (e *Evaluator) RenderValue(obj Object) (string, *Error) {
	if isNone(obj) {
		return "None", nil
	}
	inst, ok := obj.(*ClassInstance)
	if !ok {
		return obj.Inspect(), nil
	}
	if !inst.HasMethod(config.StrMethod, 0) {
		return inst.Inspect(), nil
	}
	result := e.CallMethod(inst, config.StrMethod, nil)
	if errObj, ok := result.(*Error); ok {
		return "", errObj
	}
	return e.RenderValue(result)
}
