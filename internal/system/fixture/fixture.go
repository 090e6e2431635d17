// Released under an MIT license. See LICENSE.

// Package fixture loads ply object graphs from YAML documents.
//
// A graph lists objects in creation order; each object may name
// parents and give scalar properties. Parents may refer to any object
// in the same document, including ones defined later, or to objects
// supplied by the caller. Unlike the core, which drops malformed
// delegates silently, fixture documents are hand-authored, so problems
// here are reported as errors.
//
//	objects:
//	  - name: base
//	    properties:
//	      kind: "shape"
//	  - name: point
//	    parents: [base, mixin]
//	    properties:
//	      x: 1
//	      y: 2
//	  - name: mixin
//	    properties:
//	      visible: true
package fixture

import (
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v2"

	"ply"
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/type/boolean"
	"ply/internal/common/type/dict"
	"ply/internal/common/type/num"
	"ply/internal/common/type/str"
)

// Entry is one named object built from a graph, in document order.
type Entry struct {
	Name   string
	Object object.I
}

type graph struct {
	Objects []item `yaml:"objects"`
}

type item struct {
	Name       string        `yaml:"name"`
	Parents    []string      `yaml:"parents"`
	Properties yaml.MapSlice `yaml:"properties"`
}

// Load builds the object graph described by the YAML document in r.
// Names not defined by the document are resolved through lookup, which
// may be nil.
func Load(r io.Reader, lookup func(name string) (object.I, bool)) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var g graph
	if err := yaml.UnmarshalStrict(data, &g); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(g.Objects))
	created := map[string]object.I{}

	// All objects exist before any parent is resolved, so documents
	// can reference parents defined later in the file.
	for _, it := range g.Objects {
		if it.Name == "" {
			return nil, fmt.Errorf("fixture: object with no name")
		}

		if _, ok := created[it.Name]; ok {
			return nil, fmt.Errorf("fixture: duplicate object %q", it.Name)
		}

		o := dict.New(nil)

		created[it.Name] = o
		entries = append(entries, Entry{Name: it.Name, Object: o})
	}

	resolve := func(name string) (object.I, bool) {
		if o, ok := created[name]; ok {
			return o, true
		}

		if lookup != nil {
			return lookup(name)
		}

		return nil, false
	}

	for _, it := range g.Objects {
		host := created[it.Name]

		for _, p := range it.Properties {
			k := fmt.Sprint(p.Key)

			v, err := convert(p.Value)
			if err != nil {
				return nil, fmt.Errorf("fixture: object %q, property %q: %w", it.Name, k, err)
			}

			host.Set(k, v)
		}

		parents := make([]object.I, 0, len(it.Parents))

		for _, name := range it.Parents {
			p, ok := resolve(name)
			if !ok {
				return nil, fmt.Errorf("fixture: object %q: unknown parent %q", it.Name, name)
			}

			parents = append(parents, p)
		}

		ply.Attach(host, parents...)
	}

	return entries, nil
}

func convert(v interface{}) (value.I, error) {
	switch t := v.(type) {
	case bool:
		return boolean.Bool(t), nil
	case int:
		return num.Int(t), nil
	case int64:
		return num.Rat(new(big.Rat).SetInt64(t)), nil
	case float64:
		r := new(big.Rat).SetFloat64(t)
		if r == nil {
			return nil, fmt.Errorf("%v is not a finite number", t)
		}

		return num.Rat(r), nil
	case string:
		return str.New(t), nil
	default:
		return nil, fmt.Errorf("unsupported value %v", t)
	}
}
