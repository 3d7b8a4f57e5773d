// Package query selects nodes of a syntax tree with boolean expressions.
//
// An expression is evaluated once for each grammar node of the tree, in
// pre-order, with these names bound:
//
//	kind    the node kind, e.g. "FunctionDef"
//	fields  the names of the node's fields
//	line    the lineno attribute, or 0
//	col     the col_offset attribute, or 0
//	depth   the number of grammar nodes above the node
//	has(f)  whether field f is present and not None
//	str(f)  the string value of field f, or ""
//	known(k) whether k is a kind of a known grammar revision
//
// For example
//
//	kind == "FunctionDef" && has("type_comment")
package query

import (
	"errors"
	"fmt"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env(ast.New(""), 0)),
		expr.AsBool(),
		expr.Function("known", func(params ...any) (any, error) {
			return ast.KnownKind(params[0].(string)), nil
		},
			new(func(string) bool)),
	}
}

// Compile compiles a query expression, which must evaluate to a boolean.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

func env(n *ast.Node, depth int) map[string]any {
	line, _ := n.Attr(ast.AttrLineno).Int()
	col, _ := n.Attr(ast.AttrColOffset).Int()
	fields := make([]string, len(n.Fields))
	copy(fields, n.Fields)
	return map[string]any{
		"kind":   n.Kind,
		"fields": fields,
		"line":   line,
		"col":    col,
		"depth":  depth,
		"has": func(name string) bool {
			v, ok := n.Get(name)
			return ok && !v.IsNone()
		},
		"str": func(name string) string {
			return n.Str(name)
		},
	}
}

// Match evaluates q on n, a grammar node found depth nodes below the root.
func (q *Query) Match(n *ast.Node, depth int) (bool, error) {
	res, err := expr.Run(q.prg, env(n, depth))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrQuery, n.Kind, err)
	}
	ok, _ := res.(bool)
	if debug.Query() {
		debug.Logf("query %q on %s at depth %d: %t\n", q.src, n.Kind, depth, ok)
	}
	return ok, nil
}

// Find returns the grammar nodes of root, in pre-order, for which q holds.
func (q *Query) Find(root *ast.Node) ([]*ast.Node, error) {
	var res []*ast.Node
	err := Walk(root, func(n *ast.Node, depth int) error {
		ok, err := q.Match(n, depth)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Walk calls f for each grammar node of root in pre-order, stopping at the
// first error.
func Walk(root *ast.Node, f func(n *ast.Node, depth int) error) error {
	return walk(root, 0, f)
}

func walk(n *ast.Node, depth int, f func(*ast.Node, int) error) error {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ast.ListType:
		for _, v := range n.Values {
			if err := walk(v, depth, f); err != nil {
				return err
			}
		}
	case ast.NodeType:
		if err := f(n, depth); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err := walk(v, depth+1, f); err != nil {
				return err
			}
		}
	}
	return nil
}
