// Released under an MIT license. See LICENSE.

// Package dict provides ply's basic object type.
//
// A dict has own properties and a single prototype slot. Property reads
// fall through to the prototype chain; property writes always land on
// the receiver. That asymmetry is load-bearing: delegation in ply is a
// lookup fan-out, never a write fan-out.
package dict

import (
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/struct/fields"
)

const name = "object"

// T (dict) is an object with own properties and a single prototype.
type T struct {
	props     *fields.T
	prototype object.I
	fixed     bool // true once PreventExtensions has been called
}

type dict = T

// New creates a new dict with the prototype p. A nil p is valid and
// produces an object at the root of its chain.
func New(p object.I) *dict {
	return &dict{props: fields.New(), prototype: p}
}

// Define associates the name k with the value v as an own property,
// without consulting the prototype chain. For a dict this is the same
// operation as Set; the distinction matters for intercepting types.
func (d *dict) Define(k string, v value.I) {
	d.Set(k, v)
}

// Delete removes the own property k. Returns true if it was present.
func (d *dict) Delete(k string) bool {
	return d.props.Del(k)
}

// Equal returns true if v is the same dict as d.
func (d *dict) Equal(v value.I) bool {
	return Is(v) && d == To(v)
}

// Extensible returns true if new properties can be added to the dict d.
func (d *dict) Extensible() bool {
	return !d.fixed
}

// Get retrieves the value associated with the name k, walking the
// prototype chain when k is not an own property.
func (d *dict) Get(k string) (value.I, bool) {
	if v, ok := d.props.Get(k); ok {
		return v, true
	}

	if d.prototype != nil {
		return d.prototype.Get(k)
	}

	return nil, false
}

// GetOwn retrieves the value associated with the own property k.
func (d *dict) GetOwn(k string) (value.I, bool) {
	return d.props.Get(k)
}

// Has returns true if the name k resolves on d or its prototype chain.
func (d *dict) Has(k string) bool {
	_, ok := d.Get(k)

	return ok
}

// Keys returns the names of the own properties of d in insertion order.
func (d *dict) Keys() []string {
	return d.props.Keys()
}

// Name returns the type name for the dict d.
func (d *dict) Name() string {
	return name
}

// PreventExtensions bars new properties from being added to the dict d.
// Once barred, a dict cannot be made extensible again.
func (d *dict) PreventExtensions() {
	d.fixed = true
}

// Prototype returns the prototype of the dict d.
func (d *dict) Prototype() object.I {
	return d.prototype
}

// Set associates the name k with the value v as an own property of d.
// The prototype chain is never consulted: writes create or update a
// property on the receiver even when a delegate defines the same name.
func (d *dict) Set(k string, v value.I) {
	if d.fixed && !d.props.Has(k) {
		return
	}

	d.props.Set(k, v)
}

// SetPrototype replaces the prototype of the dict d. It reports whether
// the replacement took effect. Setting the current prototype again
// always succeeds; a non-extensible dict refuses any other change.
func (d *dict) SetPrototype(p object.I) bool {
	if p == d.prototype {
		return true
	}

	if d.fixed {
		return false
	}

	d.prototype = p

	return true
}

// Is returns true if v is a dict.
func Is(v value.I) bool {
	_, ok := v.(*dict)

	return ok
}

// To returns a dict if v is a dict; Otherwise it panics.
func To(v value.I) *dict {
	if t, ok := v.(*dict); ok {
		return t
	}

	panic(v.Name() + " cannot be used in an object context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t dict

	// The dict type is a value.
	_ = value.I(&t)

	// The dict type is an object.
	_ = object.I(&t)
}
