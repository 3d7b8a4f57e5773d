package ast

import "fmt"

type Type int

const (
	NoneType Type = iota
	NodeType
	ListType
	StringType
	BytesType
	NumberType
	ComplexType
	BoolType
	EllipsisType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:     "None",
		NodeType:     "Node",
		ListType:     "List",
		StringType:   "String",
		BytesType:    "Bytes",
		NumberType:   "Number",
		ComplexType:  "Complex",
		BoolType:     "Bool",
		EllipsisType: "Ellipsis",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":     NoneType,
		"Node":     NodeType,
		"List":     ListType,
		"String":   StringType,
		"Bytes":    BytesType,
		"Number":   NumberType,
		"Complex":  ComplexType,
		"Bool":     BoolType,
		"Ellipsis": EllipsisType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		NodeType,
		ListType,
		StringType,
		BytesType,
		NumberType,
		ComplexType,
		BoolType,
		EllipsisType,
	}
}

// IsLeaf reports whether values of type t are primitives, i.e. never carry
// child nodes.
func (t Type) IsLeaf() bool {
	switch t {
	case NodeType, ListType:
		return false
	default:
		return true
	}
}
