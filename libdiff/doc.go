// Package libdiff computes line diffs of rendered trees.
//
// # Usage
//
//	// Diff two versions of source text
//	d := libdiff.Unified(before, after)
//
//	// Diff the dumps of two trees
//	d := libdiff.Trees(a, b)
//
// An empty result means the inputs are equal.
//
// # Related Packages
//
//   - github.com/signadot/astunparse/roundtrip - round trip checks reporting diffs
//   - github.com/signadot/astunparse/dump - tree dumps
package libdiff
