// Released under an MIT license. See LICENSE.

// Package ordered provides ply's delegate list type.
//
// An ordered is a sequence of objects with set semantics: each object
// appears at most once, at the position of its first occurrence. Nil
// entries and excluded identities are never admitted. The position of
// an entry is its lookup priority, so first occurrence winning is what
// keeps previously established priority stable when an entry is merged
// in again.
package ordered

import (
	"sync"

	"ply/internal/common/interface/object"
)

// T (ordered) is an insertion-ordered set of objects.
type T struct {
	sync.RWMutex
	entries  []object.I
	excluded []object.I
}

type ordered = T

// New creates a new ordered containing the entries in es.
func New(es ...object.I) *ordered {
	o := &ordered{}
	o.Merge(es...)

	return o
}

// Exclude marks the identities in es as never admissible. Existing
// entries that match are removed.
func (o *ordered) Exclude(es ...object.I) {
	o.Lock()
	defer o.Unlock()

	for _, e := range es {
		if e == nil {
			continue
		}

		o.excluded = append(o.excluded, e)
	}

	kept := o.entries[:0]
	for _, e := range o.entries {
		if !o.barred(e) {
			kept = append(kept, e)
		}
	}
	o.entries = kept
}

// Has returns true if e is an entry in the ordered o.
func (o *ordered) Has(e object.I) bool {
	if o == nil {
		return false
	}

	o.RLock()
	defer o.RUnlock()

	for _, entry := range o.entries {
		if entry == e {
			return true
		}
	}

	return false
}

// Merge appends the entries in es, then removes duplicates keeping the
// position of the first occurrence of each entry. Nil and excluded
// entries are dropped. Merging an empty list is a no-op.
func (o *ordered) Merge(es ...object.I) {
	if len(es) == 0 {
		return
	}

	o.Lock()
	defer o.Unlock()

	merged := make([]object.I, 0, len(o.entries)+len(es))
	merged = append(merged, o.entries...)
	merged = append(merged, es...)

	seen := map[object.I]bool{}
	unique := merged[:0]

	for _, e := range merged {
		if e == nil || seen[e] || o.barred(e) {
			continue
		}

		seen[e] = true

		unique = append(unique, e)
	}

	o.entries = unique
}

// Size returns the number of entries in the ordered o.
func (o *ordered) Size() int {
	if o == nil {
		return 0
	}

	o.RLock()
	defer o.RUnlock()

	return len(o.entries)
}

// Slice returns a copy of the entries in the ordered o.
func (o *ordered) Slice() []object.I {
	if o == nil {
		return nil
	}

	o.RLock()
	defer o.RUnlock()

	entries := make([]object.I, len(o.entries))
	copy(entries, o.entries)

	return entries
}

func (o *ordered) barred(e object.I) bool {
	for _, x := range o.excluded {
		if x == e {
			return true
		}
	}

	return false
}
