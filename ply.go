// Released under an MIT license. See LICENSE.

// Package ply adds multiple-parent delegation to a single-prototype
// object model.
//
// A ply object has one prototype slot. Attach interposes a synthetic
// intermediary in that slot: an intercepting wrapper around a node that
// holds an ordered, deduplicated list of parents. Property lookups on
// the host fall through its single prototype into the wrapper, which
// consults the parents in order. The original prototype becomes the
// first, highest-priority parent, so behavior established before the
// attach is preserved by default.
//
// Reads fan out across parents; writes do not. Assignment creates an
// own property on the receiver, exactly as it would without an
// intermediary installed.
package ply

import (
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/type/node"
	"ply/internal/common/type/proxy"
)

// Attach adds the objects in parents as additional parents of host.
// An empty list is a no-op. The first call interposes an intermediary
// in host's prototype slot; later calls merge into the same
// intermediary, so a host owns at most one. Nil parents, duplicates,
// and the intermediary's own identity are silently dropped rather
// than rejected.
func Attach(host object.I, parents ...object.I) {
	if len(parents) == 0 {
		return
	}

	previous := host.Prototype()

	// The original prototype becomes the highest-priority parent.
	merged := make([]object.I, 0, len(parents)+1)
	merged = append(merged, previous)
	merged = append(merged, parents...)

	if !node.Is(previous) {
		wrapped, _ := New()
		if !host.SetPrototype(wrapped) {
			// A host that refuses the new prototype keeps its
			// original behavior; nothing to merge into.
			return
		}
	}

	node.To(host.Prototype()).Merge(merged...)
}

// New creates a fresh intermediary with the parents in ps and returns
// its wrapped and raw forms. The wrapped form is what belongs in a
// prototype slot; the raw form is for callers that need to manage the
// parent list directly.
func New(ps ...object.I) (object.I, *node.T) {
	n := node.New(ps...)

	return proxy.New(n), n
}

// Is returns true if v is an intermediary constructed by this package,
// raw or wrapped. The check is one hop deep: an intermediary somewhere
// further up a chain does not count. It is false, never a panic, for
// nil and non-object values.
func Is(v value.I) bool {
	return node.Is(v)
}

// Bookkeeping returns the reserved names an intermediary writes into
// its backing store. Debug-only; test harnesses use it to verify that
// bookkeeping can never collide with user-visible property names.
func Bookkeeping() []string {
	return node.Bookkeeping()
}
