// Released under an MIT license. See LICENSE.

// Package truth defines the interface for ply values that have a truth value.
package truth

import (
	"ply/internal/common/interface/value"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a value, if possible.
func Value(v value.I) bool {
	b, ok := v.(I)
	if !ok {
		panic(v.Name() + " cannot be used in a boolean context")
	}

	return b.Bool()
}
