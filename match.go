package astunparse

import (
	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/debug"
)

type MatchConfig struct {
	Attributes bool
}

type MatchOpt func(*MatchConfig)

// MatchAttributes makes the position attributes of pattern nodes take part
// in matching.
func MatchAttributes(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Attributes = v }
}

// Match reports whether tree matches pattern. A pattern node matches a
// node of the same kind when each of its fields matches the field of the
// same name. A None pattern matches anything, lists match element by
// element and leaves match equal leaves.
func Match(tree, pattern *ast.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return match(tree, pattern, cfg)
}

func match(tree, pattern *ast.Node, cfg *MatchConfig) bool {
	if pattern.IsNone() {
		return true
	}
	if tree == nil || tree.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ast.NodeType:
		return matchNode(tree, pattern, cfg)
	case ast.ListType:
		if len(tree.Values) != len(pattern.Values) {
			return false
		}
		for i, p := range pattern.Values {
			if !match(tree.Values[i], p, cfg) {
				return false
			}
		}
		return true
	default:
		return ast.Equal(tree, pattern)
	}
}

func matchNode(tree, pattern *ast.Node, cfg *MatchConfig) bool {
	if debug.Query() {
		debug.Logf("match %s against %s\n", tree.Kind, pattern.Kind)
	}
	if tree.Kind != pattern.Kind {
		return false
	}
	for i, name := range pattern.Fields {
		v, ok := tree.Get(name)
		if !ok && !pattern.Values[i].IsNone() {
			return false
		}
		if !match(v, pattern.Values[i], cfg) {
			return false
		}
	}
	if !cfg.Attributes {
		return true
	}
	for i, name := range pattern.Attrs {
		if !match(tree.Attr(name), pattern.AttrValues[i], cfg) {
			return false
		}
	}
	return true
}
