// Released under an MIT license. See LICENSE.

// Package fields provides ply's name to value mapping type.
//
// Unlike a bare map, a fields keeps its keys in insertion order so that
// key enumeration is stable.
package fields

import (
	"sync"

	"ply/internal/common/interface/value"
)

// T (fields) maps names to values, preserving insertion order.
type T struct {
	sync.RWMutex
	m     map[string]value.I
	order []string
}

type fields = T

// New creates a new fields.
func New() *fields {
	return &fields{m: map[string]value.I{}}
}

// Copy creates a new fields with the same entries in the same order.
func (f *fields) Copy() *fields {
	if f == nil {
		return nil
	}

	f.RLock()
	defer f.RUnlock()

	fresh := New()
	for _, k := range f.order {
		fresh.m[k] = f.m[k]
		fresh.order = append(fresh.order, k)
	}

	return fresh
}

// Del frees the name k from any association in the fields f.
func (f *fields) Del(k string) bool {
	if f == nil {
		return false
	}

	f.Lock()
	defer f.Unlock()

	_, ok := f.m[k]
	if !ok {
		return false
	}

	delete(f.m, k)

	for i, name := range f.order {
		if name == k {
			f.order = append(f.order[:i], f.order[i+1:]...)

			break
		}
	}

	return true
}

// Get retrieves the value associated with the name k in the fields f.
func (f *fields) Get(k string) (value.I, bool) {
	if f == nil {
		return nil, false
	}

	f.RLock()
	defer f.RUnlock()

	v, ok := f.m[k]

	return v, ok
}

// Has returns true if the name k is set in the fields f.
func (f *fields) Has(k string) bool {
	_, ok := f.Get(k)

	return ok
}

// Keys returns the names in the fields f in insertion order.
func (f *fields) Keys() []string {
	if f == nil {
		return nil
	}

	f.RLock()
	defer f.RUnlock()

	keys := make([]string, len(f.order))
	copy(keys, f.order)

	return keys
}

// Set associates the name k with the value v in the fields f.
func (f *fields) Set(k string, v value.I) {
	f.Lock()
	defer f.Unlock()

	if _, ok := f.m[k]; !ok {
		f.order = append(f.order, k)
	}

	f.m[k] = v
}

// Size returns the number of entries in the fields f.
func (f *fields) Size() int {
	if f == nil {
		return 0
	}

	f.RLock()
	defer f.RUnlock()

	return len(f.m)
}
