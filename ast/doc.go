// Package ast provides the syntax tree representation consumed by the
// unparser and the dumper.
//
// # Overview
//
// A tree is built by an external parser (or by hand in tests) and is only
// ever read by this module. All trees, regardless of which grammar
// revision or dialect produced them, are represented as *ast.Node values.
//
// The Node works as a recursive tagged union: the Type field says which of
// the other fields carry the value.
//
//   - NodeType: a grammar production such as BinOp or FunctionDef. Kind
//     holds the production name, Fields[i] names Values[i].
//   - ListType: an ordered sequence, elements in Values.
//   - NoneType: an explicitly empty optional value.
//   - StringType, BytesType: text and byte strings in String.
//   - NumberType: Int64, Float64 or, for integers too large for an int64,
//     the decimal text in Number.
//   - ComplexType: an imaginary literal, the imaginary part in Float64.
//   - BoolType, EllipsisType.
//
// # Dialects
//
// The baseline dialect never carries type comments. In the extended
// dialect FunctionDef, AsyncFunctionDef, Assign, For, AsyncFor, With,
// AsyncWith and arg nodes carry a type_comment field whose value is None
// or a string. Dialects are told apart by field presence only:
//
//	n.Has("type_comment")
//
// so a tree may freely mix nodes of both.
//
// # Creating Nodes
//
//	sum := ast.New("BinOp").
//	    With("left", ast.New("Name").With("id", ast.FromString("a")).With("ctx", ast.New("Load"))).
//	    With("op", ast.New("Add")).
//	    With("right", ast.New("Name").With("id", ast.FromString("b")).With("ctx", ast.New("Load")))
//
// # Attributes
//
// Source positions (lineno, col_offset, end_lineno, end_col_offset) are
// kept apart from fields in Attrs and AttrValues. They are never needed to
// reconstruct source text.
//
// # Documents
//
// Trees can be stored as JSON or YAML documents and decoded with Load.
// Mappings with a "_type" key are nodes, sequences are lists and null is
// None. Byte strings, imaginary numbers, large integers, non-finite floats
// and the Ellipsis constant use single entry mappings keyed by "$bytes",
// "$complex", "$int", "$float" and "$ellipsis":
//
//	{"_type": "Expr", "value": {"_type": "Bytes", "s": {"$bytes": "spam"}, "kind": "rb"}}
//
// # Related Packages
//
//   - github.com/signadot/astunparse/unparse - renders a tree as source text
//   - github.com/signadot/astunparse/dump - renders a tree for inspection
package ast
