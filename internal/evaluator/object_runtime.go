package evaluator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/mython/internal/ast"
)

// Method is a named body with formal parameters, owned by its class.
type Method struct {
	Name         string
	FormalParams []string
	Body         *ast.BlockStatement
}

// Class owns its methods and holds a non-owning reference to its parent.
// Classes are immutable after construction and are themselves values, so
// a class definition can be stored in a scope like any other object.
type Class struct {
	Name    string
	Methods []*Method
	Parent  *Class
}

func NewClass(name string, methods []*Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// GetMethod resolves name along the parent chain; first match wins.
// The returned method lives as long as the class.
func (c *Class) GetMethod(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return "Class " + c.Name }

// ClassInstance owns its field scope and refers to its class. The ID
// identifies the instance in the opaque representation used when the
// class defines no __str__.
type ClassInstance struct {
	Class  *Class
	Fields *Environment
	ID     uuid.UUID
}

func NewClassInstance(cls *Class) *ClassInstance {
	return &ClassInstance{
		Class:  cls,
		Fields: NewEnvironment(),
		ID:     uuid.New(),
	}
}

// HasMethod reports whether the class chain defines name with exactly
// argumentCount formal parameters.
func (ci *ClassInstance) HasMethod(name string, argumentCount int) bool {
	if m := ci.Class.GetMethod(name); m != nil {
		return len(m.FormalParams) == argumentCount
	}
	return false
}

func (ci *ClassInstance) Type() ObjectType { return CLASS_INSTANCE_OBJ }
func (ci *ClassInstance) Inspect() string {
	return fmt.Sprintf("<%s instance %s>", ci.Class.Name, ci.ID)
}
