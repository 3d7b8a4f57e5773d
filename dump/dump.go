package dump

import (
	"bytes"
	"io"
	"strconv"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/token"
)

type dumpState struct {
	annotate bool
	attrs    bool
	indent   string
	depth    int
	color    func(ast.Type, ColorAttr, string) string

	w   io.Writer
	err error
}

type entry struct {
	name  string
	value *ast.Node
}

// Dump writes the dump of root to w. Only errors of w are returned.
func Dump(root *ast.Node, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{annotate: true, indent: "  ", w: w}
	for _, opt := range opts {
		opt(ds)
	}
	ds.dump(root)
	return ds.err
}

// String returns the dump of root.
func String(root *ast.Node, opts ...DumpOption) string {
	buf := bytes.NewBuffer(nil)
	// a bytes.Buffer does not fail
	_ = Dump(root, buf, opts...)
	return buf.String()
}

func (ds *dumpState) write(v string) {
	if ds.err != nil {
		return
	}
	_, ds.err = io.WriteString(ds.w, v)
}

func (ds *dumpState) paint(t ast.Type, a ColorAttr, v string) string {
	if ds.color == nil {
		return v
	}
	return ds.color(t, a, v)
}

func (ds *dumpState) dump(n *ast.Node) {
	var (
		open, close string
		entries     []entry
	)
	switch {
	case n != nil && n.Type == ast.ListType:
		open, close = "[", "]"
		entries = make([]entry, len(n.Values))
		for i, v := range n.Values {
			entries[i] = entry{value: v}
		}
	case n != nil && n.Type == ast.NodeType:
		open = ds.paint(ast.NodeType, KindColor, n.Kind) + "("
		close = ")"
		for i, f := range n.Fields {
			entries = append(entries, entry{name: f, value: n.Values[i]})
		}
		if ds.attrs {
			for i, a := range n.Attrs {
				entries = append(entries, entry{name: a, value: n.AttrValues[i]})
			}
		}
	default:
		ds.write(ds.primitive(n))
		return
	}

	multi := len(entries) > 1
	if multi {
		ds.depth++
	}
	ds.write(open)
	for i, e := range entries {
		if multi {
			ds.write("\n")
			for range ds.depth {
				ds.write(ds.indent)
			}
		}
		if ds.annotate && e.name != "" {
			ds.write(ds.paint(ast.NodeType, FieldColor, e.name) + "=")
		}
		ds.dump(e.value)
		if i != len(entries)-1 {
			ds.write(ds.paint(ast.ListType, SepColor, ","))
		}
	}
	ds.write(close)
	if multi {
		ds.depth--
	}
}

// primitive returns the canonical representation of a leaf value.
func (ds *dumpState) primitive(n *ast.Node) string {
	if n == nil {
		return ds.paint(ast.NoneType, ValueColor, "None")
	}
	var v string
	switch n.Type {
	case ast.NoneType:
		v = "None"
	case ast.EllipsisType:
		v = "Ellipsis"
	case ast.BoolType:
		v = "False"
		if n.Bool {
			v = "True"
		}
	case ast.StringType:
		v = token.Quote(n.String)
	case ast.BytesType:
		v = token.QuoteBytes(n.String)
	case ast.ComplexType:
		v = token.FormatImag(*n.Float64)
	case ast.NumberType:
		switch {
		case n.Int64 != nil:
			v = strconv.FormatInt(*n.Int64, 10)
		case n.Float64 != nil:
			v = token.FormatFloat(*n.Float64)
		default:
			v = n.Number
		}
	default:
		panic("type")
	}
	return ds.paint(n.Type, ValueColor, v)
}
