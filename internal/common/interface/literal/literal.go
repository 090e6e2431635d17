// Released under an MIT license. See LICENSE.

// Package literal defines the interface for ply values that can be expressed as literals.
package literal

import (
	"ply/internal/common/interface/value"
)

// I (literal) is any value that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a value, if possible.
func String(v value.I) string {
	l, ok := v.(I)
	if !ok {
		// Not all value types can be expressed as literals.
		panic(v.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
