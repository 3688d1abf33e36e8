// SPDX-License-Identifier: MIT
// Package: wavegrid/meshbuild
//
// doc.go — package overview.
//
// Package meshbuild provides deterministic, parameterized generators for
// the meshes the pipeline is exercised with: the unit cube, an arbitrary
// axis-aligned box shell, and a rectangular plane patch.
//
// Contract (strict):
//   - Generators are deterministic for a fixed option set.
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic — they return errors.
//   - Every generated mesh satisfies the mesh package invariants
//     (triangle-only, in-range indices, derived AABB).
package meshbuild
