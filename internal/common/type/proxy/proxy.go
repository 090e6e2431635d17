// Released under an MIT license. See LICENSE.

// Package proxy provides the wrapped form of ply's delegation intermediary.
//
// A proxy is the interception layer: it implements every fundamental
// object operation by forwarding to the raw node it wraps, where the
// delegation-resolution logic lives. To the rest of the model a proxy
// is indistinguishable from a normal single prototype. Expose returns
// the raw node for internal bookkeeping.
package proxy

import (
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/type/node"
)

// T (proxy) intercepts fundamental operations and forwards them to a node.
type T struct {
	wrapped
}

type proxy = T

type wrapped = *node.T

// New creates a proxy wrapping the node n. The proxy registers its own
// identity with the node so that the node never delegates to its own
// wrapped form.
func New(n *node.T) object.I {
	p := &proxy{n}

	n.Exclude(p)

	return p
}

// Equal returns true if v is the same intermediary as p, raw or wrapped.
func (p *proxy) Equal(v value.I) bool {
	return node.Is(v) && p.Expose() == node.To(v)
}

// Expose returns the raw node wrapped by the proxy p.
func (p *proxy) Expose() *node.T {
	return p.wrapped
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t proxy

	// The proxy type is a value.
	_ = value.I(&t)

	// The proxy type is an object.
	_ = object.I(&t)
}
