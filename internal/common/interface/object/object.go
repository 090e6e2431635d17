// Released under an MIT license. See LICENSE.

// Package object defines the interface for ply's property-bearing values.
//
// Every fundamental operation the model supports has one method here. A
// type that implements this interface can stand in a prototype slot, act
// as a delegate, or intercept the operations performed on it. There is no
// reflective trap mechanism; interception is plain interface dispatch.
package object

import (
	"ply/internal/common/interface/value"
)

// I (object) is the interface for ply's property-bearing values.
type I interface {
	value.I

	// Named-property operations.
	Get(k string) (value.I, bool)
	GetOwn(k string) (value.I, bool)
	Set(k string, v value.I)
	Define(k string, v value.I)
	Has(k string) bool
	Delete(k string) bool

	// Operations on the object's own identity and shape.
	Keys() []string
	Prototype() I
	SetPrototype(p I) bool
	Extensible() bool
	PreventExtensions()
}

type object = I

// Is returns true if v is an object.
func Is(v value.I) bool {
	_, ok := v.(object)

	return ok
}

// To returns an object if v is an object; Otherwise it panics.
func To(v value.I) object {
	if t, ok := v.(object); ok {
		return t
	}

	panic(v.Name() + " cannot be used in an object context")
}
