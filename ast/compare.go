package ast

import (
	"math"
	"slices"
	"strconv"
)

// Equal reports whether a and b are structurally equal. Position
// attributes are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return a.IsNone() && b.IsNone()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NoneType, EllipsisType:
		return true
	case StringType, BytesType:
		return a.String == b.String
	case BoolType:
		return a.Bool == b.Bool
	case NumberType, ComplexType:
		return numberText(a) == numberText(b)
	case ListType:
		return equalNodes(a.Values, b.Values)
	case NodeType:
		if a.Kind != b.Kind || !slices.Equal(a.Fields, b.Fields) {
			return false
		}
		return equalNodes(a.Values, b.Values)
	}
	return false
}

func equalNodes(as, bs []*Node) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func numberText(n *Node) string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		f := *n.Float64
		if math.IsNaN(f) {
			return "nan"
		}
		return "f" + strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return n.Number
	}
}
