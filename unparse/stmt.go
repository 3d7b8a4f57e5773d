package unparse

import (
	"strings"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/token"
)

func stmtRules() map[string]rule {
	return map[string]rule{
		"Module":      unparseBody,
		"Interactive": unparseBody,
		"Suite":       unparseBody,
		"Expression": func(s *state, n *ast.Node) {
			s.dispatch(n.Field("body"))
		},
		"FunctionType": unparseFunctionType,
		"TypeIgnore":   func(*state, *ast.Node) {},

		"Expr": func(s *state, n *ast.Node) {
			s.fill("")
			s.dispatch(n.Field("value"))
		},
		"Import": func(s *state, n *ast.Node) {
			s.fill("import ")
			s.interleave(", ", n.List("names"))
		},
		"ImportFrom":       unparseImportFrom,
		"Assign":           unparseAssign,
		"AugAssign":        unparseAugAssign,
		"AnnAssign":        unparseAnnAssign,
		"Return":           unparseReturn,
		"Pass":             func(s *state, _ *ast.Node) { s.fill("pass") },
		"Break":            func(s *state, _ *ast.Node) { s.fill("break") },
		"Continue":         func(s *state, _ *ast.Node) { s.fill("continue") },
		"Delete":           unparseDelete,
		"Assert":           unparseAssert,
		"Exec":             unparseExec,
		"Print":            unparsePrint,
		"Global":           func(s *state, n *ast.Node) { s.fill("global " + identifiers(n)) },
		"Nonlocal":         func(s *state, n *ast.Node) { s.fill("nonlocal " + identifiers(n)) },
		"Raise":            unparseRaise,
		"Try":              unparseTry,
		"TryExcept":        unparseTry,
		"TryFinally":       unparseTryFinally,
		"ExceptHandler":    unparseExceptHandler,
		"ClassDef":         unparseClassDef,
		"FunctionDef":      unparseFunctionDef,
		"AsyncFunctionDef": unparseFunctionDef,
		"For":              unparseFor,
		"AsyncFor":         unparseFor,
		"If":               unparseIf,
		"While":            unparseWhile,
		"With":             unparseWith,
		"AsyncWith":        unparseWith,
		"withitem":         unparseWithItem,
		"alias":            unparseAlias,
	}
}

func unparseBody(s *state, n *ast.Node) {
	for _, stmt := range n.List("body") {
		s.dispatch(stmt)
	}
}

func unparseFunctionType(s *state, n *ast.Node) {
	s.write("(")
	s.interleave(", ", n.List("argtypes"))
	s.write(") -> ")
	s.dispatch(n.Field("returns"))
}

func unparseImportFrom(s *state, n *ast.Node) {
	s.fill("from ")
	if level, ok := n.Field("level").Int(); ok && level > 0 {
		s.write(strings.Repeat(".", level))
	}
	if m := n.Field("module"); m.Truthy() {
		s.writeOrDispatch(m)
	}
	s.write(" import ")
	s.interleave(", ", n.List("names"))
}

func unparseAssign(s *state, n *ast.Node) {
	s.fill("")
	for _, target := range n.List("targets") {
		s.dispatch(target)
		s.write(" = ")
	}
	s.dispatch(n.Field("value"))
}

func unparseAugAssign(s *state, n *ast.Node) {
	s.fill("")
	s.dispatch(n.Field("target"))
	s.write(" " + token.BinOps[n.Field("op").Kind] + "= ")
	s.dispatch(n.Field("value"))
}

// unparseAnnAssign rejects annotated assignments which have no source
// form: several targets, a tuple or list target, or a type comment next to
// the annotation.
func unparseAnnAssign(s *state, n *ast.Node) {
	target := n.Field("target")
	if !n.Has("target") && len(n.List("targets")) > 1 {
		s.fail(n, ErrMultipleTargets)
		return
	}
	if target != nil && target.Type == ast.ListType {
		if len(target.Values) > 1 {
			s.fail(n, ErrMultipleTargets)
			return
		}
		if len(target.Values) == 1 {
			target = target.Values[0]
		}
	}
	if target.IsKind("Tuple", "List") {
		s.fail(n, ErrGroupedTarget)
		return
	}
	if _, ok := typeComment(n); ok {
		s.fail(n, ErrRedundantAnnotation)
		return
	}
	s.fill("")
	paren := !n.Field("simple").Truthy() && target.IsKind("Name")
	if paren {
		s.write("(")
	}
	s.dispatch(target)
	if paren {
		s.write(")")
	}
	s.write(": ")
	s.dispatch(n.Field("annotation"))
	if v := n.Field("value"); v.Truthy() {
		s.write(" = ")
		s.dispatch(v)
	}
}

func unparseReturn(s *state, n *ast.Node) {
	s.fill("return")
	if v := n.Field("value"); v.Truthy() {
		s.write(" ")
		s.dispatch(v)
	}
}

func unparseDelete(s *state, n *ast.Node) {
	s.fill("del ")
	s.interleave(", ", n.List("targets"))
}

func unparseAssert(s *state, n *ast.Node) {
	s.fill("assert ")
	s.dispatch(n.Field("test"))
	if msg := n.Field("msg"); msg.Truthy() {
		s.write(", ")
		s.dispatch(msg)
	}
}

func unparseExec(s *state, n *ast.Node) {
	s.fill("exec ")
	s.dispatch(n.Field("body"))
	if g := n.Field("globals"); g.Truthy() {
		s.write(" in ")
		s.dispatch(g)
	}
	if l := n.Field("locals"); l.Truthy() {
		s.write(", ")
		s.dispatch(l)
	}
}

func unparsePrint(s *state, n *ast.Node) {
	s.fill("print ")
	comma := false
	if dest := n.Field("dest"); dest.Truthy() {
		s.write(">>")
		s.dispatch(dest)
		comma = true
	}
	for _, v := range n.List("values") {
		if comma {
			s.write(", ")
		}
		comma = true
		s.dispatch(v)
	}
	if !n.Field("nl").Truthy() {
		s.write(",")
	}
}

func identifiers(n *ast.Node) string {
	names := n.List("names")
	res := make([]string, len(names))
	for i, name := range names {
		res[i] = name.String
	}
	return strings.Join(res, ", ")
}

// unparseRaise handles both the exc/cause form and the older
// type/inst/tback form.
func unparseRaise(s *state, n *ast.Node) {
	if !n.Has("exc") && n.Has("type") {
		s.fill("raise ")
		s.dispatch(n.Field("type"))
		for _, name := range []string{"inst", "tback"} {
			if v := n.Field(name); v.Truthy() {
				s.write(", ")
				s.dispatch(v)
			}
		}
		return
	}
	s.fill("raise")
	exc := n.Field("exc")
	if !exc.Truthy() {
		return
	}
	s.write(" ")
	s.dispatch(exc)
	if cause := n.Field("cause"); cause.Truthy() {
		s.write(" from ")
		s.dispatch(cause)
	}
}

func unparseTry(s *state, n *ast.Node) {
	s.fill("try")
	s.block(n.List("body"))
	for _, h := range n.List("handlers") {
		s.dispatch(h)
	}
	s.optBlock("else", n.List("orelse"))
	s.optBlock("finally", n.List("finalbody"))
}

func unparseTryFinally(s *state, n *ast.Node) {
	body := n.List("body")
	if len(body) == 1 && body[0].IsKind("TryExcept") {
		// try-except-finally
		s.dispatch(body[0])
	} else {
		s.fill("try")
		s.block(body)
	}
	s.fill("finally")
	s.block(n.List("finalbody"))
}

func unparseExceptHandler(s *state, n *ast.Node) {
	s.fill("except")
	if t := n.Field("type"); t.Truthy() {
		s.write(" ")
		s.dispatch(t)
	}
	if name := n.Field("name"); name.Truthy() {
		s.write(" as ")
		s.writeOrDispatch(name)
	}
	s.block(n.List("body"))
}

func unparseClassDef(s *state, n *ast.Node) {
	s.write("\n")
	s.decorators(n)
	s.fill("class " + n.Str("name"))
	s.write("(")
	comma := false
	sep := func() {
		if comma {
			s.write(", ")
		}
		comma = true
	}
	for _, base := range n.List("bases") {
		sep()
		s.dispatch(base)
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
	s.block(n.List("body"))
}

func (s *state) decorators(n *ast.Node) {
	for _, deco := range n.List("decorator_list") {
		s.fill("@")
		s.dispatch(deco)
	}
}

// functionHeader writes a function definition up to, not including, the
// colon introducing its body.
func (s *state) functionHeader(n *ast.Node) {
	s.write("\n")
	s.decorators(n)
	def := "def "
	if n.Kind == "AsyncFunctionDef" {
		def = "async def "
	}
	s.fill(def + n.Str("name") + "(")
	s.dispatch(n.Field("args"))
	s.write(")")
	if r := n.Field("returns"); r.Truthy() {
		s.write(" -> ")
		s.dispatch(r)
	}
}

func unparseFunctionDef(s *state, n *ast.Node) {
	s.functionHeader(n)
	s.block(n.List("body"))
}

func (s *state) forHeader(n *ast.Node) {
	if n.Kind == "AsyncFor" {
		s.fill("async for ")
	} else {
		s.fill("for ")
	}
	s.dispatch(n.Field("target"))
	s.write(" in ")
	s.dispatch(n.Field("iter"))
}

func unparseFor(s *state, n *ast.Node) {
	s.forHeader(n)
	s.block(n.List("body"))
	s.optBlock("else", n.List("orelse"))
}

// unparseIf renders a chain of conditionals, each nested in the else
// branch of the previous one as its only statement, as elif clauses.
func unparseIf(s *state, n *ast.Node) {
	s.fill("if ")
	s.dispatch(n.Field("test"))
	s.block(n.List("body"))
	for {
		orelse := n.List("orelse")
		if len(orelse) != 1 || !orelse[0].IsKind("If") {
			break
		}
		n = orelse[0]
		s.fill("elif ")
		s.dispatch(n.Field("test"))
		s.block(n.List("body"))
	}
	s.optBlock("else", n.List("orelse"))
}

func unparseWhile(s *state, n *ast.Node) {
	s.fill("while ")
	s.dispatch(n.Field("test"))
	s.block(n.List("body"))
	s.optBlock("else", n.List("orelse"))
}

// withHeader writes the items of a context block. Nodes without items use
// the single item context_expr form.
func (s *state) withHeader(n *ast.Node) {
	if n.Kind == "AsyncWith" {
		s.fill("async with ")
	} else {
		s.fill("with ")
	}
	if n.Has("items") {
		s.interleave(", ", n.List("items"))
		return
	}
	unparseWithItem(s, n)
}

func unparseWith(s *state, n *ast.Node) {
	s.withHeader(n)
	s.block(n.List("body"))
}

func unparseWithItem(s *state, n *ast.Node) {
	s.dispatch(n.Field("context_expr"))
	if v := n.Field("optional_vars"); v.Truthy() {
		s.write(" as ")
		s.dispatch(v)
	}
}

func unparseAlias(s *state, n *ast.Node) {
	s.write(n.Str("name"))
	if as := n.Str("asname"); as != "" {
		s.write(" as " + as)
	}
}

// writeOrDispatch writes a string value as is and dispatches anything else.
func (s *state) writeOrDispatch(v *ast.Node) {
	if v.Type == ast.StringType {
		s.write(v.String)
		return
	}
	s.dispatch(v)
}
