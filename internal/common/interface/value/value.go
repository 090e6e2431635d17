// Released under an MIT license. See LICENSE.

// Package value defines the interface for all ply model values.
package value

// I (value) is the basic unit of storage in a ply object model.
type I interface {
	Equal(v I) bool
	Name() string
}
