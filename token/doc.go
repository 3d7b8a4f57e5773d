// Package token renders the lexical pieces of source text: quoted and raw
// string literals, numeric literals and operator tokens.
//
// The quoting functions reproduce the canonical representation the source
// language itself prints for a value, so that rendered literals read back
// to exactly the same value.
package token
