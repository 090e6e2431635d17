// Released under an MIT license. See LICENSE.

// Package str provides ply's string value type.
package str

import (
	"github.com/michaelmacinnis/adapted"

	"ply/internal/common"
	"ply/internal/common/interface/literal"
	"ply/internal/common/interface/truth"
	"ply/internal/common/interface/value"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str value.
func New(v string) value.I {
	s := str(v)

	return &s
}

// Bool returns the boolean value of the str s.
func (s *str) Bool() bool {
	return s.String() != ""
}

// Equal returns true if the value v wraps the same string.
func (s *str) Equal(v value.I) bool {
	return Is(v) && s.String() == To(v).String()
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(*s))
}

// Name returns the type name for the str s.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if v is a str.
func Is(v value.I) bool {
	_, ok := v.(*str)

	return ok
}

// To returns a str if v is a str; Otherwise it panics.
func To(v value.I) *str {
	if t, ok := v.(*str); ok {
		return t
	}

	panic(v.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a value.
	_ = value.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
