// Package dump renders a syntax tree as nested constructor calls,
//
//	BinOp(
//	  left=Name(id='a', ctx=Load()),
//	  op=Add(),
//	  right=Name(id='b', ctx=Load()))
//
// for inspection and comparison of trees. A node or list with more than
// one entry puts each entry on its own line, one level deeper than the
// node itself; one with a single entry or none stays on one line.
// Primitive values are written in their canonical quoted form.
//
// Field names are written by default (AnnotateFields) and position
// attributes are left out by default (IncludeAttributes).
package dump
