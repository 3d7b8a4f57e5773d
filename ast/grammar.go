package ast

import "slices"

// Position attribute names.
const (
	AttrLineno       = "lineno"
	AttrColOffset    = "col_offset"
	AttrEndLineno    = "end_lineno"
	AttrEndColOffset = "end_col_offset"
)

// TypeCommentField is the field carrying type comment text in the extended
// dialect.
const TypeCommentField = "type_comment"

func IsAttr(name string) bool {
	switch name {
	case AttrLineno, AttrColOffset, AttrEndLineno, AttrEndColOffset:
		return true
	default:
		return false
	}
}

// grammar holds the declared field order of each known kind. Where grammar
// revisions disagree the union is listed; fields absent from a given node
// are simply skipped.
var grammar = map[string][]string{
	// mod
	"Module":       {"body", "type_ignores"},
	"Interactive":  {"body"},
	"Expression":   {"body"},
	"FunctionType": {"argtypes", "returns"},
	"Suite":        {"body"},

	// stmt
	"FunctionDef":      {"name", "args", "body", "decorator_list", "returns", TypeCommentField},
	"AsyncFunctionDef": {"name", "args", "body", "decorator_list", "returns", TypeCommentField},
	"ClassDef":         {"name", "bases", "keywords", "starargs", "kwargs", "body", "decorator_list"},
	"Return":           {"value"},
	"Delete":           {"targets"},
	"Assign":           {"targets", "value", TypeCommentField},
	"AugAssign":        {"target", "op", "value"},
	"AnnAssign":        {"target", "annotation", "value", "simple"},
	"For":              {"target", "iter", "body", "orelse", TypeCommentField},
	"AsyncFor":         {"target", "iter", "body", "orelse", TypeCommentField},
	"While":            {"test", "body", "orelse"},
	"If":               {"test", "body", "orelse"},
	"With":             {"items", "context_expr", "optional_vars", "body", TypeCommentField},
	"AsyncWith":        {"items", "body", TypeCommentField},
	"Raise":            {"exc", "cause", "type", "inst", "tback"},
	"Try":              {"body", "handlers", "orelse", "finalbody"},
	"TryExcept":        {"body", "handlers", "orelse"},
	"TryFinally":       {"body", "finalbody"},
	"Assert":           {"test", "msg"},
	"Import":           {"names"},
	"ImportFrom":       {"module", "names", "level"},
	"Global":           {"names"},
	"Nonlocal":         {"names"},
	"Expr":             {"value"},
	"Pass":             {},
	"Break":            {},
	"Continue":         {},
	"Print":            {"dest", "values", "nl"},
	"Exec":             {"body", "globals", "locals"},

	// expr
	"BoolOp":         {"op", "values"},
	"NamedExpr":      {"target", "value"},
	"BinOp":          {"left", "op", "right"},
	"UnaryOp":        {"op", "operand"},
	"Lambda":         {"args", "body"},
	"IfExp":          {"test", "body", "orelse"},
	"Dict":           {"keys", "values"},
	"Set":            {"elts"},
	"ListComp":       {"elt", "generators"},
	"SetComp":        {"elt", "generators"},
	"DictComp":       {"key", "value", "generators"},
	"GeneratorExp":   {"elt", "generators"},
	"Await":          {"value"},
	"Yield":          {"value"},
	"YieldFrom":      {"value"},
	"Compare":        {"left", "ops", "comparators"},
	"Call":           {"func", "args", "keywords", "starargs", "kwargs"},
	"Repr":           {"value"},
	"Num":            {"n"},
	"Str":            {"s", "kind"},
	"FormattedValue": {"value", "conversion", "format_spec"},
	"JoinedStr":      {"values"},
	"Bytes":          {"s", "kind"},
	"NameConstant":   {"value"},
	"Ellipsis":       {},
	"Constant":       {"value", "kind"},
	"Attribute":      {"value", "attr", "ctx"},
	"Subscript":      {"value", "slice", "ctx"},
	"Starred":        {"value", "ctx"},
	"Name":           {"id", "ctx"},
	"List":           {"elts", "ctx"},
	"Tuple":          {"elts", "ctx"},

	// slice
	"Slice":    {"lower", "upper", "step"},
	"ExtSlice": {"dims"},
	"Index":    {"value"},

	// misc
	"comprehension": {"target", "iter", "ifs", "is_async"},
	"ExceptHandler": {"type", "name", "body"},
	"arguments":     {"posonlyargs", "args", "vararg", "kwonlyargs", "kw_defaults", "kwarg", "defaults"},
	"arg":           {"arg", "annotation", TypeCommentField},
	"keyword":       {"arg", "value"},
	"alias":         {"name", "asname"},
	"withitem":      {"context_expr", "optional_vars"},
	"TypeIgnore":    {"lineno", "tag"},
}

// KnownKind reports whether kind belongs to one of the supported grammar
// revisions, including the field-less operator and context kinds.
func KnownKind(kind string) bool {
	if _, ok := grammar[kind]; ok {
		return true
	}
	return OperatorKind(kind)
}

// OperatorKind reports whether kind is a field-less operator or expression
// context kind.
func OperatorKind(kind string) bool {
	switch kind {
	case "Load", "Store", "Del", "AugLoad", "AugStore", "Param",
		"And", "Or",
		"Add", "Sub", "Mult", "MatMult", "Div", "Mod", "Pow",
		"LShift", "RShift", "BitOr", "BitXor", "BitAnd", "FloorDiv",
		"Invert", "Not", "UAdd", "USub",
		"Eq", "NotEq", "Lt", "LtE", "Gt", "GtE", "Is", "IsNot", "In", "NotIn":
		return true
	default:
		return false
	}
}

// FieldOrder returns the declared field order of kind, or nil if the kind
// is not in the catalog.
func FieldOrder(kind string) []string {
	return grammar[kind]
}

// Canonicalize returns a copy of n in which the fields of every known kind
// appear in declared order. Unknown fields follow in their original
// relative order. Leaves are shared with n.
func Canonicalize(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ListType:
		res := &Node{Type: ListType, Values: make([]*Node, len(n.Values))}
		for i, v := range n.Values {
			res.Values[i] = Canonicalize(v)
		}
		return res
	case NodeType:
	default:
		return n
	}
	res := &Node{
		Type:       NodeType,
		Kind:       n.Kind,
		Attrs:      slices.Clone(n.Attrs),
		AttrValues: slices.Clone(n.AttrValues),
	}
	order := grammar[n.Kind]
	used := make([]bool, len(n.Fields))
	for _, name := range order {
		i := slices.Index(n.Fields, name)
		if i == -1 {
			continue
		}
		used[i] = true
		res.With(name, Canonicalize(n.Values[i]))
	}
	for i, name := range n.Fields {
		if used[i] {
			continue
		}
		res.With(name, Canonicalize(n.Values[i]))
	}
	return res
}
