// Released under an MIT license. See LICENSE.

// Package boolean provides ply's boolean value type.
package boolean

import (
	"ply/internal/common"
	"ply/internal/common/interface/literal"
	"ply/internal/common/interface/truth"
	"ply/internal/common/interface/value"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates a new boolean from the bool b.
func Bool(b bool) value.I {
	if b {
		return True
	}

	return False
}

// New creates a boolean from the string s, which must be "true" or "false".
func New(s string) value.I {
	b, ok := map[string]*boolean{
		"true":  True,
		"false": False,
	}[s]

	if !ok {
		panic(s + " is not 'true' or 'false'")
	}

	return b
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if v is a boolean with a matching value.
func (b *boolean) Equal(v value.I) bool {
	return Is(v) && b.Bool() == To(v).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return "(|" + name + " " + b.String() + "|)"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

// Is returns true if v is a boolean.
func Is(v value.I) bool {
	_, ok := v.(*boolean)

	return ok
}

// To returns a boolean if v is a boolean; Otherwise it panics.
func To(v value.I) *boolean {
	if t, ok := v.(*boolean); ok {
		return t
	}

	panic(v.Name() + " cannot be used in a boolean context")
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a value.
	_ = value.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
