// Package unparse renders a syntax tree as source text.
//
// Rendering is a single depth first pass over the tree driven by a table
// of rules keyed by node kind. Every statement starts a new line with
// fill, so the text of a module begins with a newline, and the whole
// output ends with one:
//
//	src, err := unparse.String(tree)
//
// # Type Comments
//
// Nodes of the extended dialect may carry a type_comment field. When it
// holds text, an annotation aware rule is used in place of the baseline
// one for the node:
//
//   - assignments, loop headers and context blocks get a trailing
//     "  # type: ..." comment on their first line;
//   - function definitions get a leading "# type: ..." line as the first
//     line of their body;
//   - parameters get a trailing comment after their separating comma,
//     followed by a continuation line.
//
// # Parentheses
//
// Operator expressions (boolean, binary, unary, comparisons, conditional
// expressions, lambdas, await and yield) are always parenthesized as a
// whole. The output is therefore not minimal, but it never depends on
// operator precedence to read back to the same tree.
//
// # Errors
//
// Annotated assignments which cannot be expressed in source text are
// rejected with an error wrapping ErrSyntax. A node kind without a rule is
// a programming error and panics.
package unparse
