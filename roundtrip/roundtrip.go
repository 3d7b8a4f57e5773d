// Package roundtrip checks that unparsed source reads back to the same
// source.
//
// The parser of the source language is not part of this module; callers
// supply one through the Parser interface. Check unparses a tree, parses
// the result and unparses again, several times over, and reports the
// first pass whose text or tree differs from the previous one.
package roundtrip

import (
	"errors"
	"fmt"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/debug"
	"github.com/signadot/astunparse/libdiff"
	"github.com/signadot/astunparse/unparse"
)

// DefaultIterations is the number of parse and unparse passes Check makes
// when asked for fewer than one.
const DefaultIterations = 4

var (
	ErrMismatch = errors.New("round trip mismatch")
	ErrParse    = errors.New("round trip parse error")
)

type Parser interface {
	Parse(src string) (*ast.Node, error)
}

type ParserFunc func(src string) (*ast.Node, error)

func (f ParserFunc) Parse(src string) (*ast.Node, error) {
	return f(src)
}

// Check unparses tree and then parses and unparses the result iterations
// times. Every pass must reproduce the text of the first one, and from
// the second parse on, the tree of the previous parse. It returns the
// source text of tree.
func Check(tree *ast.Node, p Parser, iterations int, opts ...unparse.UnparseOption) (string, error) {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	src, err := unparse.String(tree, opts...)
	if err != nil {
		return "", err
	}
	var prev *ast.Node
	text := src
	for i := 1; i <= iterations; i++ {
		t, err := p.Parse(text)
		if err != nil {
			return src, fmt.Errorf("%w: pass %d: %w", ErrParse, i, err)
		}
		next, err := unparse.String(t, opts...)
		if err != nil {
			return src, fmt.Errorf("pass %d: %w", i, err)
		}
		if debug.RoundTrip() {
			debug.Logf("round trip pass %d:\n%s", i, next)
		}
		if next != text {
			return src, fmt.Errorf("%w: text of pass %d differs:\n%s", ErrMismatch, i, libdiff.Unified(text, next))
		}
		if prev != nil && !ast.Equal(prev, t) {
			return src, fmt.Errorf("%w: tree of pass %d differs:\n%s", ErrMismatch, i, libdiff.Trees(prev, t))
		}
		prev = t
	}
	return src, nil
}
