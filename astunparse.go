// Package astunparse renders syntax trees as source text and as
// structural dumps.
//
//	src, err := astunparse.Unparse(tree)
//	fmt.Println(astunparse.Dump(tree, true, false))
//
// Trees are *ast.Node values built by a parser of the source language or
// loaded from documents with ast.Load. The unparse and dump packages hold
// the renderers and their options.
package astunparse

import (
	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/dump"
	"github.com/signadot/astunparse/query"
	"github.com/signadot/astunparse/unparse"
)

// Unparse returns the source text of tree.
func Unparse(tree *ast.Node) (string, error) {
	return unparse.String(tree)
}

// MustUnparse is like Unparse but panics on error.
func MustUnparse(tree *ast.Node) string {
	res, err := Unparse(tree)
	if err != nil {
		panic(err)
	}
	return res
}

// Dump returns the structural dump of tree.
func Dump(tree *ast.Node, annotateFields, includeAttributes bool) string {
	return dump.String(tree,
		dump.AnnotateFields(annotateFields),
		dump.IncludeAttributes(includeAttributes))
}

// Find returns the nodes of tree for which the query expression q holds.
func Find(tree *ast.Node, q string) ([]*ast.Node, error) {
	compiled, err := query.Compile(q)
	if err != nil {
		return nil, err
	}
	return compiled.Find(tree)
}
