// Released under an MIT license. See LICENSE.

// Package node provides ply's delegation intermediary type.
//
// A node stands in the single prototype slot of a host object and fans
// property lookups out across an ordered list of parents. The node
// itself is the raw form; the wrapped form the rest of the model sees
// is an intercepting object that forwards every fundamental operation
// here. Internal bookkeeping is anchored to the raw node so that it
// never depends on whichever wrapper happens to be installed.
//
// Named-property reads consult the node's own backing store first and
// then each parent in order; the first parent that resolves the name
// wins. Writes, defines, and deletes touch only the backing store, and
// shape queries (keys, prototype, extensibility) report the backing
// store alone. A parent can therefore never be mutated, shadowed, or
// enumerated through the node.
package node

import (
	"strconv"

	"ply/internal/common"
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/struct/ordered"
	"ply/internal/common/type/dict"
)

const name = "node"

// Bookkeeping entries are stored under names no ordinary identifier can
// collide with. The debug surface below exposes them for test harnesses.
const (
	selfKey    = "(|" + name + " self|)"
	parentsKey = "(|" + name + " parents|)"
)

// T (node) is the raw delegation intermediary.
type T struct {
	parents *ordered.T
	store   *dict.T
}

type node = T

// New creates a new node with the parents in ps. An empty list is
// valid; such a node is a no-op intermediary until parents are merged
// in. The node is its own first excluded identity, so it can never
// delegate to itself.
func New(ps ...object.I) *node {
	n := &node{parents: ordered.New(), store: dict.New(nil)}

	n.parents.Exclude(n)
	n.parents.Merge(ps...)

	n.store.Set(selfKey, n)
	n.store.Set(parentsKey, &meta{n})

	return n
}

// Bookkeeping returns the reserved names the node writes into its
// backing store. Intended for test harnesses verifying that reserved
// names cannot collide with user-visible property names.
func Bookkeeping() []string {
	return []string{selfKey, parentsKey}
}

// Define associates the name k with the value v in the node's backing
// store. Parents are not consulted.
func (n *node) Define(k string, v value.I) {
	n.store.Define(k, v)
}

// Delete removes the own property k from the node's backing store.
// Names resolved by parents are untouched; deleting one is a no-op
// that returns false.
func (n *node) Delete(k string) bool {
	return n.store.Delete(k)
}

// Equal returns true if v is the same node as n, raw or wrapped.
func (n *node) Equal(v value.I) bool {
	return Is(v) && n == To(v)
}

// Exclude marks the identities in es as never admissible as parents.
// The wrapped form registers itself here so that a caller re-attaching
// the intermediary they were handed cannot create a cycle.
func (n *node) Exclude(es ...object.I) {
	n.parents.Exclude(es...)
}

// Extensible reports the extensibility of the node's backing store.
// The store is always fresh and never sealed, so this is always true;
// forwarding keeps the wrapped form's shape queries self-consistent.
func (n *node) Extensible() bool {
	return n.store.Extensible()
}

// Get retrieves the value for the name k: the backing store first,
// then each parent in priority order.
func (n *node) Get(k string) (value.I, bool) {
	if v, ok := n.store.Get(k); ok {
		return v, true
	}

	for _, p := range n.parents.Slice() {
		if v, ok := p.Get(k); ok {
			return v, true
		}
	}

	return nil, false
}

// GetOwn retrieves the value for the name k from the backing store or,
// failing that, from the first parent holding k as an own property.
func (n *node) GetOwn(k string) (value.I, bool) {
	if v, ok := n.store.GetOwn(k); ok {
		return v, true
	}

	for _, p := range n.parents.Slice() {
		if v, ok := p.GetOwn(k); ok {
			return v, true
		}
	}

	return nil, false
}

// Has returns true if the name k resolves on the backing store or on
// any parent.
func (n *node) Has(k string) bool {
	if n.store.Has(k) {
		return true
	}

	for _, p := range n.parents.Slice() {
		if p.Has(k) {
			return true
		}
	}

	return false
}

// Keys returns the names of the backing store's own properties. Names
// contributed by parents never appear here.
func (n *node) Keys() []string {
	return n.store.Keys()
}

// Merge adds the parents in ps to the node's parent list. Duplicates
// keep the position of their first occurrence, so priority established
// by an earlier merge is preserved. Nil entries and the node's own
// identities are dropped.
func (n *node) Merge(ps ...object.I) {
	n.parents.Merge(ps...)
}

// Name returns the type name for the node n.
func (n *node) Name() string {
	return name
}

// Parents returns the node's current parent list, highest priority
// first.
func (n *node) Parents() []object.I {
	return n.parents.Slice()
}

// PreventExtensions forwards to the node's backing store. Sealing an
// intermediary is pass-through by design; it does not seal any parent.
func (n *node) PreventExtensions() {
	n.store.PreventExtensions()
}

// Prototype returns the prototype of the node's backing store.
func (n *node) Prototype() object.I {
	return n.store.Prototype()
}

// Set associates the name k with the value v in the node's backing
// store. Writes are never distributed across parents: delegation is a
// lookup fan-out, not a write fan-out.
func (n *node) Set(k string, v value.I) {
	n.store.Set(k, v)
}

// SetPrototype forwards to the node's backing store.
func (n *node) SetPrototype(p object.I) bool {
	return n.store.SetPrototype(p)
}

// Is returns true if v is a node, raw or wrapped. It is false for nil
// and for values with no direct association to a node; a transitive
// ancestor being a node is not enough.
func Is(v value.I) bool {
	if v == nil {
		return false
	}

	if _, ok := v.(*node); ok {
		return true
	}

	_, ok := v.(exposer)

	return ok
}

// To returns the raw node for v if v is a node, raw or wrapped;
// Otherwise it panics.
func To(v value.I) *node {
	if t, ok := v.(*node); ok {
		return t
	}

	if e, ok := v.(exposer); ok {
		return e.Expose()
	}

	panic(v.Name() + " cannot be used in a delegation context")
}

// exposer is how a wrapped form surrenders its raw node.
type exposer interface {
	Expose() *T
}

// meta is the debug-only metadata record stored under parentsKey: a
// type tag plus a live view of the node's parents.
type meta struct {
	n *node
}

// Equal returns true if v is the metadata record of the same node.
func (m *meta) Equal(v value.I) bool {
	o, ok := v.(*meta)

	return ok && m.n == o.n
}

// Name returns the type name for the meta m.
func (m *meta) Name() string {
	return "metadata"
}

// Parents returns a live view of the parents of the node described by
// the meta m.
func (m *meta) Parents() []object.I {
	return m.n.Parents()
}

// String renders the type tag and current parent count.
func (m *meta) String() string {
	return name + "[" + strconv.Itoa(m.n.parents.Size()) + "]"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t node
	var m meta

	// The node type is a value.
	_ = value.I(&t)

	// The node type is an object.
	_ = object.I(&t)

	// The meta type is a value.
	_ = value.I(&m)

	// The meta type is a stringer.
	_ = common.Stringer(&m)
}
