// Released under an MIT license. See LICENSE.

package node

import (
	"strings"
	"testing"

	"ply/internal/common/type/dict"
	"ply/internal/common/type/num"
)

func TestLookupOrder(t *testing.T) {
	d1, d2 := dict.New(nil), dict.New(nil)
	d2.Set("k", num.Int(7))

	n := New(d1, d2)

	v, ok := n.Get("k")
	if !ok || !v.Equal(num.Int(7)) {
		t.Fatalf("expected k to resolve to 7 through the second parent")
	}

	// An earlier parent defining the same name takes priority.
	d1.Set("k", num.Int(3))

	if v, _ := n.Get("k"); !v.Equal(num.Int(3)) {
		t.Errorf("expected first parent in order to win, got %v", v)
	}
}

func TestLookupReachesInheritedProperties(t *testing.T) {
	base := dict.New(nil)
	base.Set("k", num.Int(1))

	parent := dict.New(base)

	n := New(parent)

	v, ok := n.Get("k")
	if !ok || !v.Equal(num.Int(1)) {
		t.Errorf("expected lookup to follow a parent's own prototype chain")
	}

	if _, ok := n.GetOwn("k"); ok {
		t.Errorf("expected GetOwn to ignore a parent's inherited properties")
	}
}

func TestOwnStoreWinsOverParents(t *testing.T) {
	parent := dict.New(nil)
	parent.Set("k", num.Int(1))

	n := New(parent)
	n.Set("k", num.Int(2))

	if v, _ := n.Get("k"); !v.Equal(num.Int(2)) {
		t.Errorf("expected the backing store to take priority over parents")
	}
}

func TestWritesNeverReachParents(t *testing.T) {
	parent := dict.New(nil)
	parent.Set("k", num.Int(1))

	n := New(parent)
	n.Set("k", num.Int(2))

	if v, _ := parent.GetOwn("k"); !v.Equal(num.Int(1)) {
		t.Errorf("expected parent to be untouched by a write")
	}

	n.Delete("k")

	if !parent.Has("k") {
		t.Errorf("expected delete to be confined to the backing store")
	}

	if n.Delete("missing") {
		t.Errorf("expected delete of a parent-only name to be a no-op")
	}
}

func TestKeysExcludeParentContributions(t *testing.T) {
	parent := dict.New(nil)
	parent.Set("inherited", num.Int(1))

	n := New(parent)
	n.Set("own", num.Int(2))

	for _, k := range n.Keys() {
		if k == "inherited" {
			t.Errorf("expected keys contributed by parents to stay hidden")
		}
	}

	found := false

	for _, k := range n.Keys() {
		if k == "own" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected own keys to be listed")
	}
}

func TestHas(t *testing.T) {
	parent := dict.New(nil)
	parent.Set("k", num.Int(1))

	n := New(parent)

	if !n.Has("k") {
		t.Errorf("expected a parent name to resolve")
	}

	if n.Has("missing") {
		t.Errorf("expected an unknown name not to resolve")
	}
}

func TestNodeNeverDelegatesToItself(t *testing.T) {
	n := New()

	n.Merge(n)

	if len(n.Parents()) != 0 {
		t.Errorf("expected a node to exclude itself from its parents")
	}
}

func TestMergePreservesPriority(t *testing.T) {
	a, b, c := dict.New(nil), dict.New(nil), dict.New(nil)

	n := New(a, b)
	n.Merge(b, c, a)

	ps := n.Parents()
	want := []interface{}{a, b, c}

	if len(ps) != len(want) {
		t.Fatalf("expected 3 parents, got %d", len(ps))
	}

	for i := range want {
		if ps[i] != want[i] {
			t.Errorf("parent %d mismatch", i)
		}
	}
}

func TestBookkeeping(t *testing.T) {
	keys := Bookkeeping()
	if len(keys) != 2 {
		t.Fatalf("expected 2 bookkeeping names, got %d", len(keys))
	}

	for _, k := range keys {
		if !strings.HasPrefix(k, "(|") || !strings.HasSuffix(k, "|)") {
			t.Errorf("expected reserved name %q to use the meta format", k)
		}
	}

	n := New()

	ks := n.Keys()
	if len(ks) != len(keys) {
		t.Fatalf("expected a fresh node to hold only bookkeeping, got %v", ks)
	}

	self, ok := n.GetOwn(keys[0])
	if !ok {
		t.Fatalf("expected the self entry to be present")
	}

	if !n.Equal(self) {
		t.Errorf("expected the self entry to reference the node")
	}

	m, ok := n.GetOwn(keys[1])
	if !ok {
		t.Fatalf("expected the metadata entry to be present")
	}

	if m.Name() != "metadata" {
		t.Errorf("expected a metadata record, got %s", m.Name())
	}
}

func TestMetadataViewIsLive(t *testing.T) {
	n := New()

	v, _ := n.GetOwn(Bookkeeping()[1])

	m, ok := v.(*meta)
	if !ok {
		t.Fatalf("expected a metadata record, got %s", v.Name())
	}

	if len(m.Parents()) != 0 {
		t.Fatalf("expected no parents on a fresh node")
	}

	n.Merge(dict.New(nil))

	if len(m.Parents()) != 1 {
		t.Errorf("expected the metadata view to track merges")
	}

	if m.String() != "node[1]" {
		t.Errorf("expected tag node[1], got %s", m.String())
	}
}

func TestIs(t *testing.T) {
	n := New()

	if !Is(n) {
		t.Errorf("expected Is to be true for a raw node")
	}

	if Is(nil) {
		t.Errorf("expected Is to be false for nil")
	}

	if Is(num.Int(5)) {
		t.Errorf("expected Is to be false for a number")
	}

	if Is(dict.New(nil)) {
		t.Errorf("expected Is to be false for a plain object")
	}

	// An object whose prototype is a node is not itself a node.
	host := dict.New(nil)
	host.SetPrototype(n)

	if Is(host) {
		t.Errorf("expected Is to stay one hop deep")
	}
}

func TestToPanicsForNonNodes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected To to panic for a non-node")
		}
	}()

	To(dict.New(nil))
}
