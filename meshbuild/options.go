// SPDX-License-Identifier: MIT
// Package: wavegrid/meshbuild
//
// options.go — functional options for the mesh generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators MUST NOT panic.
//   - No hidden globals; everything flows through config.

package meshbuild

import (
	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// Option customizes a generator by mutating a config instance before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved generator parameters.
type config struct {
	// attrFn yields the attribute of the vertex at position p with ordinal
	// index i. Defaults to uniform Solid.
	attrFn func(i int, p geom.Vec3) mesh.Attribute
}

// newConfig resolves defaults, then applies opts in order.
func newConfig(opts []Option) config {
	c := config{
		attrFn: func(int, geom.Vec3) mesh.Attribute { return mesh.Solid() },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithAttribute assigns one uniform attribute to every generated vertex.
// Complexity: O(1) time, O(1) space.
func WithAttribute(a mesh.Attribute) Option {
	return func(c *config) {
		c.attrFn = func(int, geom.Vec3) mesh.Attribute { return a }
	}
}

// WithAttributeFn sets a per-vertex attribute generator: (ordinal index,
// position) → attribute. Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithAttributeFn(fn func(i int, p geom.Vec3) mesh.Attribute) Option {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("meshbuild: WithAttributeFn(nil)")
	}
	return func(c *config) {
		c.attrFn = fn
	}
}
