package unparse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/debug"
	"github.com/signadot/astunparse/token"
)

// state is owned by a single call of Unparse. The first error, either a
// write error or a rule rejecting its node, sticks and stops all further
// output.
type state struct {
	w      io.Writer
	depth  int
	indent int
	err    error
}

type rule func(s *state, n *ast.Node)

// Unparse writes the source text of root to w.
func Unparse(root *ast.Node, w io.Writer, opts ...UnparseOption) error {
	s := &state{w: w, indent: 4}
	for _, opt := range opts {
		opt(s)
	}
	s.dispatch(root)
	s.write("\n")
	return s.err
}

// String returns the source text of root.
func String(root *ast.Node, opts ...UnparseOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Unparse(root, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *state) write(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

// fill starts a new line at the current indentation and writes v.
func (s *state) fill(v string) {
	s.write("\n" + strings.Repeat(" ", s.depth*s.indent) + v)
}

func (s *state) enter() {
	s.write(":")
	s.depth++
}

func (s *state) leave() {
	s.depth--
}

func (s *state) fail(n *ast.Node, err error) {
	if s.err != nil {
		return
	}
	if line, ok := n.Attr(ast.AttrLineno).Int(); ok {
		err = fmt.Errorf("%w (line %d)", err, line)
	}
	s.err = err
}

// dispatch renders n: each element in order for a list, the kind's rule for
// a node. Absent and None values render nothing.
func (s *state) dispatch(n *ast.Node) {
	if s.err != nil || n.IsNone() {
		return
	}
	switch n.Type {
	case ast.ListType:
		for _, v := range n.Values {
			s.dispatch(v)
		}
		return
	case ast.NodeType:
	default:
		panic(fmt.Sprintf("unparse: cannot dispatch %s value", n.Type))
	}
	r := ruleFor(n)
	if r == nil {
		panic(fmt.Sprintf("unparse: unknown node kind %q", n.Kind))
	}
	if debug.Unparse() {
		debug.Logf("unparse %s at depth %d\n", n.Kind, s.depth)
	}
	r(s, n)
}

// ruleFor picks the annotation aware rule of n's kind when n carries type
// comment text, the baseline rule otherwise.
func ruleFor(n *ast.Node) rule {
	if _, ok := typeComment(n); ok {
		if r, ok := typedRules[n.Kind]; ok {
			return r
		}
	}
	return rules[n.Kind]
}

// interleave dispatches each of vs with sep written between them.
func (s *state) interleave(sep string, vs []*ast.Node) {
	for i, v := range vs {
		if i != 0 {
			s.write(sep)
		}
		s.dispatch(v)
	}
}

// block renders body one level deeper than the line before it.
func (s *state) block(body []*ast.Node) {
	s.enter()
	for _, v := range body {
		s.dispatch(v)
	}
	s.leave()
}

// optBlock renders a block introduced by keyword, or nothing if body is
// empty.
func (s *state) optBlock(keyword string, body []*ast.Node) {
	if len(body) == 0 {
		return
	}
	s.fill(keyword)
	s.block(body)
}

// Rule tables are filled in by init: rules reach back into the tables
// through dispatch.
var (
	rules      map[string]rule
	typedRules map[string]rule
)

func init() {
	rules = map[string]rule{}
	for _, table := range []map[string]rule{stmtRules(), exprRules(), literalRules()} {
		for k, r := range table {
			rules[k] = r
		}
	}
	for _, table := range []map[string]string{token.BinOps, token.UnaryOps, token.CmpOps, token.BoolOps} {
		for k, tok := range table {
			rules[k] = writeToken(tok)
		}
	}
	for _, ctx := range []string{"Load", "Store", "Del", "AugLoad", "AugStore", "Param"} {
		rules[ctx] = func(*state, *ast.Node) {}
	}
	typedRules = typedRuleTable()
}

func writeToken(tok string) rule {
	return func(s *state, _ *ast.Node) { s.write(tok) }
}
