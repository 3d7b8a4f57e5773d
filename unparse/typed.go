package unparse

import (
	"github.com/signadot/astunparse/ast"
)

// typeComment returns the type comment of n if it holds text. A type
// comment given as a node is rendered like an expression.
func typeComment(n *ast.Node) (*ast.Node, bool) {
	tc, ok := n.Get(ast.TypeCommentField)
	if !ok || tc.IsNone() {
		return nil, false
	}
	if tc.Type == ast.StringType && tc.String == "" {
		return nil, false
	}
	return tc, true
}

func typedRuleTable() map[string]rule {
	return map[string]rule{
		"FunctionDef":      unparseTypedFunctionDef,
		"AsyncFunctionDef": unparseTypedFunctionDef,
		"Assign":           unparseTypedAssign,
		"For":              unparseTypedFor,
		"AsyncFor":         unparseTypedFor,
		"With":             unparseTypedWith,
		"AsyncWith":        unparseTypedWith,
	}
}

// writeTypeComment appends a type comment to the current line.
func (s *state) writeTypeComment(tc *ast.Node) {
	s.write("  # type: ")
	s.writeOrDispatch(tc)
}

// fillTypeComment puts a type comment on a line of its own.
func (s *state) fillTypeComment(tc *ast.Node) {
	s.fill("# type: ")
	s.writeOrDispatch(tc)
}

func unparseTypedFunctionDef(s *state, n *ast.Node) {
	tc, _ := typeComment(n)
	s.functionHeader(n)
	s.enter()
	s.fillTypeComment(tc)
	for _, stmt := range n.List("body") {
		s.dispatch(stmt)
	}
	s.leave()
}

func unparseTypedAssign(s *state, n *ast.Node) {
	tc, _ := typeComment(n)
	unparseAssign(s, n)
	s.writeTypeComment(tc)
}

func unparseTypedFor(s *state, n *ast.Node) {
	tc, _ := typeComment(n)
	s.forHeader(n)
	s.enter()
	s.writeTypeComment(tc)
	for _, stmt := range n.List("body") {
		s.dispatch(stmt)
	}
	s.leave()
	s.optBlock("else", n.List("orelse"))
}

// unparseTypedWith writes a single comment covering all items of the
// block, their types separated by commas in the comment text.
func unparseTypedWith(s *state, n *ast.Node) {
	tc, _ := typeComment(n)
	s.withHeader(n)
	s.enter()
	s.writeTypeComment(tc)
	for _, stmt := range n.List("body") {
		s.dispatch(stmt)
	}
	s.leave()
}
