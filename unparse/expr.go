package unparse

import (
	"strings"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/token"
)

func exprRules() map[string]rule {
	return map[string]rule{
		"Name":          func(s *state, n *ast.Node) { s.write(n.Str("id")) },
		"NamedExpr":     unparseNamedExpr,
		"Await":         prefixed("await"),
		"Yield":         prefixed("yield"),
		"YieldFrom":     prefixed("yield from"),
		"Repr":          unparseRepr,
		"List":          enclosed("[", "]"),
		"Set":           unparseSet,
		"Tuple":         unparseTuple,
		"Dict":          unparseDict,
		"ListComp":      comprehension("[", "]"),
		"SetComp":       comprehension("{", "}"),
		"GeneratorExp":  comprehension("(", ")"),
		"DictComp":      unparseDictComp,
		"comprehension": unparseComprehension,
		"IfExp":         unparseIfExp,
		"UnaryOp":       unparseUnaryOp,
		"BinOp":         unparseBinOp,
		"Compare":       unparseCompare,
		"BoolOp":        unparseBoolOp,
		"Attribute":     unparseAttribute,
		"Call":          unparseCall,
		"Subscript":     unparseSubscript,
		"Starred": func(s *state, n *ast.Node) {
			s.write("*")
			s.dispatch(n.Field("value"))
		},
		"Ellipsis": func(s *state, _ *ast.Node) { s.write("...") },
		"Index": func(s *state, n *ast.Node) {
			s.dispatch(n.Field("value"))
		},
		"Slice":     unparseSlice,
		"ExtSlice":  unparseExtSlice,
		"arguments": unparseArguments,
		"arg":       unparseArg,
		"keyword":   unparseKeyword,
		"Lambda":    unparseLambda,
	}
}

func unparseNamedExpr(s *state, n *ast.Node) {
	s.write("(")
	s.dispatch(n.Field("target"))
	s.write(" := ")
	s.dispatch(n.Field("value"))
	s.write(")")
}

// prefixed renders a parenthesized keyword with an optional operand.
func prefixed(keyword string) rule {
	return func(s *state, n *ast.Node) {
		s.write("(")
		s.write(keyword)
		if v := n.Field("value"); v.Truthy() {
			s.write(" ")
			s.dispatch(v)
		}
		s.write(")")
	}
}

func unparseRepr(s *state, n *ast.Node) {
	s.write("`")
	s.dispatch(n.Field("value"))
	s.write("`")
}

func enclosed(open, close string) rule {
	return func(s *state, n *ast.Node) {
		s.write(open)
		s.interleave(", ", n.List("elts"))
		s.write(close)
	}
}

// unparseSet writes an empty set, which has no display form, as an
// unpacked empty tuple.
func unparseSet(s *state, n *ast.Node) {
	if len(n.List("elts")) == 0 {
		s.write("{*()}")
		return
	}
	enclosed("{", "}")(s, n)
}

func unparseTuple(s *state, n *ast.Node) {
	s.write("(")
	s.tupleElts(n.List("elts"))
	s.write(")")
}

// tupleElts writes tuple elements, a single one with a trailing comma.
func (s *state) tupleElts(elts []*ast.Node) {
	if len(elts) == 1 {
		s.dispatch(elts[0])
		s.write(",")
		return
	}
	s.interleave(", ", elts)
}

func unparseDict(s *state, n *ast.Node) {
	keys, values := n.List("keys"), n.List("values")
	s.write("{")
	for i, v := range values {
		if i != 0 {
			s.write(", ")
		}
		if i >= len(keys) || keys[i].IsNone() {
			s.write("**")
			s.dispatch(v)
			continue
		}
		s.dispatch(keys[i])
		s.write(": ")
		s.dispatch(v)
	}
	s.write("}")
}

func comprehension(open, close string) rule {
	return func(s *state, n *ast.Node) {
		s.write(open)
		s.dispatch(n.Field("elt"))
		s.dispatch(n.Field("generators"))
		s.write(close)
	}
}

func unparseDictComp(s *state, n *ast.Node) {
	s.write("{")
	s.dispatch(n.Field("key"))
	s.write(": ")
	s.dispatch(n.Field("value"))
	s.dispatch(n.Field("generators"))
	s.write("}")
}

func unparseComprehension(s *state, n *ast.Node) {
	if n.Field("is_async").Truthy() {
		s.write(" async for ")
	} else {
		s.write(" for ")
	}
	s.dispatch(n.Field("target"))
	s.write(" in ")
	s.dispatch(n.Field("iter"))
	for _, cond := range n.List("ifs") {
		s.write(" if ")
		s.dispatch(cond)
	}
}

func unparseIfExp(s *state, n *ast.Node) {
	s.write("(")
	s.dispatch(n.Field("body"))
	s.write(" if ")
	s.dispatch(n.Field("test"))
	s.write(" else ")
	s.dispatch(n.Field("orelse"))
	s.write(")")
}

func unparseUnaryOp(s *state, n *ast.Node) {
	s.write("(")
	s.write(token.UnaryOps[n.Field("op").Kind])
	s.write(" ")
	s.dispatch(n.Field("operand"))
	s.write(")")
}

func unparseBinOp(s *state, n *ast.Node) {
	s.write("(")
	s.dispatch(n.Field("left"))
	s.write(" " + token.BinOps[n.Field("op").Kind] + " ")
	s.dispatch(n.Field("right"))
	s.write(")")
}

func unparseCompare(s *state, n *ast.Node) {
	s.write("(")
	s.dispatch(n.Field("left"))
	ops, comparators := n.List("ops"), n.List("comparators")
	for i, op := range ops {
		if i >= len(comparators) {
			break
		}
		s.write(" " + token.CmpOps[op.Kind] + " ")
		s.dispatch(comparators[i])
	}
	s.write(")")
}

// unparseBoolOp parenthesizes every boolean operation, nested or not.
func unparseBoolOp(s *state, n *ast.Node) {
	s.write("(")
	s.interleave(" "+token.BoolOps[n.Field("op").Kind]+" ", n.List("values"))
	s.write(")")
}

func unparseAttribute(s *state, n *ast.Node) {
	v := n.Field("value")
	s.dispatch(v)
	// 3.__abs__() does not tokenize, 3 .__abs__() does.
	if isIntLiteral(v) {
		s.write(" ")
	}
	s.write(".")
	s.write(n.Str("attr"))
}

// isIntLiteral reports whether n is written as a bare integer literal.
func isIntLiteral(n *ast.Node) bool {
	var v *ast.Node
	switch {
	case n.IsKind("Num"):
		v = n.Field("n")
	case n.IsKind("Constant"):
		v = n.Field("value")
	default:
		return false
	}
	return v.IsInt() && !strings.HasPrefix(constant(v), "(")
}

func unparseCall(s *state, n *ast.Node) {
	s.dispatch(n.Field("func"))
	s.write("(")
	comma := false
	sep := func() {
		if comma {
			s.write(", ")
		}
		comma = true
	}
	for _, arg := range n.List("args") {
		sep()
		s.dispatch(arg)
	}
	for _, kw := range n.List("keywords") {
		sep()
		s.dispatch(kw)
	}
	if v := n.Field("starargs"); v.Truthy() {
		sep()
		s.write("*")
		s.dispatch(v)
	}
	if v := n.Field("kwargs"); v.Truthy() {
		sep()
		s.write("**")
		s.dispatch(v)
	}
	s.write(")")
}

// unparseSubscript writes a tuple index without its parentheses, since
// slices may only appear in that form.
func unparseSubscript(s *state, n *ast.Node) {
	s.dispatch(n.Field("value"))
	s.write("[")
	slice := n.Field("slice")
	if slice.IsKind("Index") {
		slice = slice.Field("value")
	}
	if elts := slice.List("elts"); slice.IsKind("Tuple") && len(elts) != 0 {
		s.tupleElts(elts)
	} else {
		s.dispatch(n.Field("slice"))
	}
	s.write("]")
}

func unparseSlice(s *state, n *ast.Node) {
	if v := n.Field("lower"); v.Truthy() {
		s.dispatch(v)
	}
	s.write(":")
	if v := n.Field("upper"); v.Truthy() {
		s.dispatch(v)
	}
	if v := n.Field("step"); v.Truthy() {
		s.write(":")
		s.dispatch(v)
	}
}

func unparseExtSlice(s *state, n *ast.Node) {
	s.tupleElts(n.List("dims"))
}
