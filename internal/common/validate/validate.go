// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"
)

// Fixed panics unless n, the number of arguments passed to verb, is
// within [min, max].
func Fixed(verb string, n, min, max int) {
	if n >= min && n <= max {
		return
	}

	s := Count(min, "argument", "s")
	if max != min {
		s = fmt.Sprintf("%d to %d arguments", min, max)
	}

	panic(fmt.Sprintf("%s: expected %s, passed %d", verb, s, n))
}

// Variadic panics unless at least min arguments were passed to verb.
func Variadic(verb string, n, min int) {
	if n >= min {
		return
	}

	s := Count(min, "argument", "s")

	panic(fmt.Sprintf("%s: expected at least %s, passed %d", verb, s, n))
}

// Count renders n with the label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
