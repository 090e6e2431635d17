// Released under an MIT license. See LICENSE.

package fixture

import (
	"strings"
	"testing"

	"ply"
	"ply/internal/common/interface/object"
	"ply/internal/common/type/boolean"
	"ply/internal/common/type/dict"
	"ply/internal/common/type/node"
	"ply/internal/common/type/num"
	"ply/internal/common/type/str"
)

const document = `
objects:
  - name: base
    properties:
      kind: "shape"
      sides: 0
  - name: point
    parents: [base, mixin]
    properties:
      x: 1
      y: 2
  - name: mixin
    properties:
      visible: true
`

func TestLoad(t *testing.T) {
	entries, err := Load(strings.NewReader(document), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(entries))
	}

	names := []string{"base", "point", "mixin"}
	for i, want := range names {
		if entries[i].Name != want {
			t.Errorf("expected object %d to be %q, got %q", i, want, entries[i].Name)
		}
	}

	objects := map[string]object.I{}
	for _, e := range entries {
		objects[e.Name] = e.Object
	}

	if v, _ := objects["base"].Get("kind"); !v.Equal(str.New("shape")) {
		t.Errorf("expected base.kind to be \"shape\"")
	}

	if v, _ := objects["point"].Get("x"); !v.Equal(num.Int(1)) {
		t.Errorf("expected point.x to be 1")
	}

	// Inherited through delegation, with mixin defined later in the file.
	if v, _ := objects["point"].Get("visible"); !v.Equal(boolean.Bool(true)) {
		t.Errorf("expected point.visible to delegate to mixin")
	}

	if v, _ := objects["point"].Get("kind"); !v.Equal(str.New("shape")) {
		t.Errorf("expected point.kind to delegate to base")
	}

	p := objects["point"].Prototype()
	if !ply.Is(p) {
		t.Fatalf("expected point to have an intermediary installed")
	}

	ps := node.To(p).Parents()
	if len(ps) != 2 || ps[0] != objects["base"] || ps[1] != objects["mixin"] {
		t.Errorf("expected point's parents to be [base mixin] in order")
	}

	if objects["base"].Prototype() != nil {
		t.Errorf("expected base to have no intermediary")
	}
}

func TestLoadPropertyOrder(t *testing.T) {
	entries, err := Load(strings.NewReader(document), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	keys := entries[0].Object.Keys()
	want := []string{"kind", "sides"}

	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("expected document property order %v, got %v", want, keys)
	}
}

func TestLoadResolvesThroughLookup(t *testing.T) {
	outside := dict.New(nil)
	outside.Set("k", num.Int(7))

	doc := `
objects:
  - name: inner
    parents: [outside]
`

	entries, err := Load(strings.NewReader(doc), func(name string) (object.I, bool) {
		if name == "outside" {
			return outside, true
		}

		return nil, false
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if v, _ := entries[0].Object.Get("k"); !v.Equal(num.Int(7)) {
		t.Errorf("expected inner to delegate to the caller-supplied parent")
	}
}

func TestLoadErrors(t *testing.T) {
	bad := map[string]string{
		"unknown parent": `
objects:
  - name: a
    parents: [missing]
`,
		"duplicate object": `
objects:
  - name: a
  - name: a
`,
		"missing name": `
objects:
  - properties:
      x: 1
`,
		"unsupported value": `
objects:
  - name: a
    properties:
      x: [1, 2]
`,
	}

	for what, doc := range bad {
		if _, err := Load(strings.NewReader(doc), nil); err == nil {
			t.Errorf("expected load with %s to fail", what)
		}
	}
}
