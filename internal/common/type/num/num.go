// Released under an MIT license. See LICENSE.

// Package num provides ply's rational number value type.
package num

import (
	"math/big"

	"ply/internal/common"
	"ply/internal/common/interface/literal"
	"ply/internal/common/interface/truth"
	"ply/internal/common/interface/value"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num value from a string.
func New(s string) value.I {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v)
}

// Int creates a num from the integer i.
func Int(i int) value.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) value.I {
	return (*num)(r)
}

// Bool returns the boolean value of the num n.
func (n *num) Bool() bool {
	return n.Rat().Cmp(&big.Rat{}) != 0
}

// Equal returns true if v is the same number as the num n.
func (n *num) Equal(v value.I) bool {
	return Is(v) && n.Rat().Cmp(To(v).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return "(|" + name + " " + n.String() + "|)"
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Is returns true if v is a num.
func Is(v value.I) bool {
	_, ok := v.(*num)

	return ok
}

// To returns a num if v is a num; Otherwise it panics.
func To(v value.I) *num {
	if t, ok := v.(*num); ok {
		return t
	}

	panic(v.Name() + " cannot be used in a numeric context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a value.
	_ = value.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
