// Released under an MIT license. See LICENSE.

package dict

import (
	"testing"

	"ply/internal/common/type/num"
	"ply/internal/common/type/str"
)

func TestOwnProperties(t *testing.T) {
	d := New(nil)

	if d.Has("x") {
		t.Errorf("expected Has to be false on a fresh dict")
	}

	d.Set("x", num.Int(42))

	v, ok := d.GetOwn("x")
	if !ok || !v.Equal(num.Int(42)) {
		t.Errorf("expected GetOwn to return 42 after Set")
	}

	if !d.Delete("x") {
		t.Errorf("expected Delete of a present property to return true")
	}

	if d.Delete("x") {
		t.Errorf("expected Delete of an absent property to return false")
	}
}

func TestGetWalksPrototypeChain(t *testing.T) {
	grandparent := New(nil)
	grandparent.Set("a", num.Int(1))

	parent := New(grandparent)
	parent.Set("b", num.Int(2))

	child := New(parent)
	child.Set("c", num.Int(3))

	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		v, ok := child.Get(k)
		if !ok || !v.Equal(num.Int(want)) {
			t.Errorf("expected %s to resolve to %d", k, want)
		}
	}

	if _, ok := child.Get("d"); ok {
		t.Errorf("expected d to be unresolved")
	}

	if _, ok := child.GetOwn("a"); ok {
		t.Errorf("expected GetOwn to ignore inherited properties")
	}
}

func TestSetNeverWritesThroughToPrototype(t *testing.T) {
	parent := New(nil)
	parent.Set("k", str.New("parent"))

	child := New(parent)
	child.Set("k", str.New("child"))

	if v, _ := parent.GetOwn("k"); !v.Equal(str.New("parent")) {
		t.Errorf("expected write on child to leave parent untouched")
	}

	if v, _ := child.GetOwn("k"); !v.Equal(str.New("child")) {
		t.Errorf("expected write to create an own property on the receiver")
	}
}

func TestShadowing(t *testing.T) {
	parent := New(nil)
	parent.Set("k", num.Int(1))

	child := New(parent)

	if v, _ := child.Get("k"); !v.Equal(num.Int(1)) {
		t.Errorf("expected k to resolve on the parent")
	}

	child.Set("k", num.Int(2))

	if v, _ := child.Get("k"); !v.Equal(num.Int(2)) {
		t.Errorf("expected own property to shadow the parent")
	}

	child.Delete("k")

	if v, _ := child.Get("k"); !v.Equal(num.Int(1)) {
		t.Errorf("expected parent property to show through after delete")
	}
}

func TestPreventExtensions(t *testing.T) {
	d := New(nil)
	d.Set("a", num.Int(1))

	if !d.Extensible() {
		t.Errorf("expected a fresh dict to be extensible")
	}

	d.PreventExtensions()

	if d.Extensible() {
		t.Errorf("expected PreventExtensions to stick")
	}

	d.Set("b", num.Int(2))

	if d.Has("b") {
		t.Errorf("expected new property on a sealed dict to be refused")
	}

	d.Set("a", num.Int(3))

	if v, _ := d.GetOwn("a"); !v.Equal(num.Int(3)) {
		t.Errorf("expected existing property on a sealed dict to update")
	}
}

func TestSetPrototype(t *testing.T) {
	p1, p2 := New(nil), New(nil)

	d := New(p1)

	if !d.SetPrototype(p2) || d.Prototype() != p2 {
		t.Errorf("expected SetPrototype to replace the prototype")
	}

	d.PreventExtensions()

	if d.SetPrototype(p1) {
		t.Errorf("expected SetPrototype to refuse on a sealed dict")
	}

	if !d.SetPrototype(p2) {
		t.Errorf("expected re-setting the current prototype to succeed")
	}
}

func TestEqual(t *testing.T) {
	a, b := New(nil), New(nil)

	if !a.Equal(a) {
		t.Errorf("expected a dict to equal itself")
	}

	if a.Equal(b) {
		t.Errorf("expected distinct dicts to differ")
	}

	if a.Equal(num.Int(1)) {
		t.Errorf("expected a dict to differ from a number")
	}
}
