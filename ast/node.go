package ast

import (
	"math"
	"slices"
)

type Node struct {
	Type Type

	// Kind names the grammar production of a NodeType node, e.g. "BinOp".
	Kind string
	// Fields[i] names the value at Values[i] for NodeType nodes. For
	// ListType nodes Fields is empty and Values holds the elements.
	Fields []string
	Values []*Node

	Attrs      []string
	AttrValues []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

// New returns a node of the given kind with no fields.
func New(kind string) *Node {
	return &Node{Type: NodeType, Kind: kind}
}

// With appends the field name with value v and returns n. A nil v is stored
// as None.
func (n *Node) With(name string, v *Node) *Node {
	if v == nil {
		v = None()
	}
	n.Fields = append(n.Fields, name)
	n.Values = append(n.Values, v)
	return n
}

// WithAttr appends a position attribute.
func (n *Node) WithAttr(name string, v *Node) *Node {
	if v == nil {
		v = None()
	}
	n.Attrs = append(n.Attrs, name)
	n.AttrValues = append(n.AttrValues, v)
	return n
}

// WithPos sets the lineno and col_offset attributes.
func (n *Node) WithPos(line, col int) *Node {
	return n.WithAttr(AttrLineno, FromInt(int64(line))).
		WithAttr(AttrColOffset, FromInt(int64(col)))
}

func None() *Node {
	return &Node{Type: NoneType}
}

func Ellipsis() *Node {
	return &Node{Type: EllipsisType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBytes(v []byte) *Node {
	return &Node{Type: BytesType, String: string(v)}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

// FromBigInt returns an integer node for decimal text that may not fit
// in an int64.
func FromBigInt(digits string) *Node {
	return &Node{Type: NumberType, Number: digits}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromComplex returns a pure imaginary number with imaginary part f.
func FromComplex(f float64) *Node {
	return &Node{Type: ComplexType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs ...*Node) *Node {
	res := &Node{Type: ListType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		if v == nil {
			v = None()
		}
		res.Values[i] = v
	}
	return res
}

// Get returns the value of field name and whether the field is present.
func (n *Node) Get(name string) (*Node, bool) {
	if n == nil || n.Type != NodeType {
		return nil, false
	}
	i := slices.Index(n.Fields, name)
	if i == -1 {
		return nil, false
	}
	return n.Values[i], true
}

func (n *Node) Has(name string) bool {
	_, ok := n.Get(name)
	return ok
}

// Field returns the value of field name, or nil if it is absent.
func (n *Node) Field(name string) *Node {
	v, _ := n.Get(name)
	return v
}

// List returns the elements of the list valued field name. An absent or
// None field yields nil. A non-list value yields a single element list.
func (n *Node) List(name string) []*Node {
	v, ok := n.Get(name)
	if !ok {
		return nil
	}
	switch v.Type {
	case ListType:
		return v.Values
	case NoneType:
		return nil
	default:
		return []*Node{v}
	}
}

// Str returns the string value of field name or "" if it is absent or not
// a string.
func (n *Node) Str(name string) string {
	v, ok := n.Get(name)
	if !ok || v.Type != StringType {
		return ""
	}
	return v.String
}

// Attr returns the value of attribute name, or nil.
func (n *Node) Attr(name string) *Node {
	if n == nil {
		return nil
	}
	i := slices.Index(n.Attrs, name)
	if i == -1 {
		return nil
	}
	return n.AttrValues[i]
}

func (n *Node) IsNone() bool {
	return n == nil || n.Type == NoneType
}

// IsKind reports whether n is a grammar node of one of the given kinds.
func (n *Node) IsKind(kinds ...string) bool {
	if n == nil || n.Type != NodeType {
		return false
	}
	return slices.Contains(kinds, n.Kind)
}

// IsInt reports whether n is an integer number.
func (n *Node) IsInt() bool {
	if n == nil || n.Type != NumberType {
		return false
	}
	return n.Float64 == nil
}

// Truthy follows the truth value testing of the source language: absent
// values, None, empty containers, empty strings and zeros are false and
// every grammar node is true.
func (n *Node) Truthy() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case NoneType:
		return false
	case NodeType, EllipsisType:
		return true
	case ListType:
		return len(n.Values) != 0
	case StringType, BytesType:
		return n.String != ""
	case BoolType:
		return n.Bool
	case NumberType, ComplexType:
		switch {
		case n.Int64 != nil:
			return *n.Int64 != 0
		case n.Float64 != nil:
			return *n.Float64 != 0 || math.IsNaN(*n.Float64)
		default:
			for _, c := range n.Number {
				if c != '0' && c != '-' && c != '+' {
					return true
				}
			}
			return false
		}
	default:
		return false
	}
}

// Int returns the integer value of n when it fits in an int.
func (n *Node) Int() (int, bool) {
	if n == nil || n.Type != NumberType || n.Int64 == nil {
		if n != nil && n.Type == BoolType {
			if n.Bool {
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	return int(*n.Int64), true
}
