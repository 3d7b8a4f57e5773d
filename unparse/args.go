package unparse

import (
	"github.com/signadot/astunparse/ast"
)

// paramList writes a parameter list. A parameter's type comment has to
// follow the comma after it, so it is held in pending until the next
// separator, or the end of the list, is written.
type paramList struct {
	s       *state
	first   bool
	pending *ast.Node
}

// sep writes the separator before a parameter, flushing the pending type
// comment with a continuation line in place of the usual space.
func (p *paramList) sep() {
	if p.first {
		p.first = false
		return
	}
	p.s.write(",")
	if p.pending == nil {
		p.s.write(" ")
		return
	}
	p.flush()
}

func (p *paramList) flush() {
	p.s.writeTypeComment(p.pending)
	p.s.fill("        ")
	p.pending = nil
}

func (p *paramList) hold(param *ast.Node) {
	p.pending, _ = typeComment(param)
}

func unparseArguments(s *state, n *ast.Node) {
	p := &paramList{s: s, first: true}
	posonly := n.List("posonlyargs")
	params := append(append([]*ast.Node{}, posonly...), n.List("args")...)
	defaults := n.List("defaults")
	off := len(params) - len(defaults)
	for i, param := range params {
		p.sep()
		s.dispatch(param)
		if j := i - off; j >= 0 && defaults[j].Truthy() {
			s.write("=")
			s.dispatch(defaults[j])
		}
		p.hold(param)
		if i == len(posonly)-1 {
			p.sep()
			s.write("/")
		}
	}

	vararg := n.Field("vararg")
	kwonly := n.List("kwonlyargs")
	if vararg.Truthy() || len(kwonly) != 0 {
		p.sep()
		s.write("*")
		if vararg.Truthy() {
			s.starParam(vararg)
			p.hold(vararg)
		}
	}

	kwDefaults := n.List("kw_defaults")
	for i, param := range kwonly {
		p.sep()
		s.dispatch(param)
		if i < len(kwDefaults) && kwDefaults[i].Truthy() {
			s.write("=")
			s.dispatch(kwDefaults[i])
		}
		p.hold(param)
	}

	if kwarg := n.Field("kwarg"); kwarg.Truthy() {
		p.sep()
		s.write("**")
		s.starParam(kwarg)
		p.hold(kwarg)
	}

	if p.pending != nil {
		p.flush()
	}
}

// starParam writes the name and annotation of a variadic parameter, which
// older grammars give as a bare identifier.
func (s *state) starParam(v *ast.Node) {
	if v.Type == ast.StringType {
		s.write(v.String)
		return
	}
	s.write(v.Str("arg"))
	if a := v.Field("annotation"); a.Truthy() {
		s.write(": ")
		s.dispatch(a)
	}
}

func unparseArg(s *state, n *ast.Node) {
	s.write(n.Str("arg"))
	if a := n.Field("annotation"); a.Truthy() {
		s.write(": ")
		s.dispatch(a)
	}
}

func unparseKeyword(s *state, n *ast.Node) {
	if arg := n.Field("arg"); arg.IsNone() {
		s.write("**")
	} else {
		s.write(arg.String)
		s.write("=")
	}
	s.dispatch(n.Field("value"))
}

func unparseLambda(s *state, n *ast.Node) {
	s.write("(")
	s.write("lambda ")
	s.dispatch(n.Field("args"))
	s.write(": ")
	s.dispatch(n.Field("body"))
	s.write(")")
}
