package unparse

import (
	"strconv"
	"strings"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/token"
)

func literalRules() map[string]rule {
	return map[string]rule{
		"Str": func(s *state, n *ast.Node) {
			s.writeString(n.Str("kind"), n.Field("s"))
		},
		"Bytes": func(s *state, n *ast.Node) {
			s.writeString(n.Str("kind"), n.Field("s"))
		},
		"Num": func(s *state, n *ast.Node) {
			s.write(constant(n.Field("n")))
		},
		"NameConstant": func(s *state, n *ast.Node) {
			s.write(constant(n.Field("value")))
		},
		"Constant":       unparseConstant,
		"JoinedStr":      unparseFString,
		"FormattedValue": unparseFString,
	}
}

func unparseConstant(s *state, n *ast.Node) {
	v := n.Field("value")
	switch v.Type {
	case ast.StringType, ast.BytesType:
		s.writeString(n.Str("kind"), v)
	case ast.ListType:
		s.write("(")
		if len(v.Values) == 1 {
			s.write(constant(v.Values[0]) + ",")
		} else {
			for i, e := range v.Values {
				if i != 0 {
					s.write(", ")
				}
				s.write(constant(e))
			}
		}
		s.write(")")
	default:
		s.write(constant(v))
	}
}

// constant returns the source text of a primitive value. Negative numbers
// are written as the negation they read back as.
func constant(v *ast.Node) string {
	if v == nil {
		return "None"
	}
	var res string
	switch v.Type {
	case ast.NoneType:
		return "None"
	case ast.BoolType:
		if v.Bool {
			return "True"
		}
		return "False"
	case ast.EllipsisType:
		return "..."
	case ast.StringType:
		return token.Quote(v.String)
	case ast.BytesType:
		return token.QuoteBytes(v.String)
	case ast.ComplexType:
		res = token.ImagLiteral(*v.Float64)
	case ast.NumberType:
		switch {
		case v.Int64 != nil:
			res = strconv.FormatInt(*v.Int64, 10)
		case v.Float64 != nil:
			res = token.FloatLiteral(*v.Float64)
		default:
			res = v.Number
		}
	default:
		panic("unparse: constant of type " + v.Type.String())
	}
	if strings.HasPrefix(res, "-") {
		return "(- " + res[1:] + ")"
	}
	return res
}

// writeString writes a text or byte string literal with its prefix. A raw
// prefix is dropped, and the content escaped, when no delimiter can hold
// the content verbatim.
func (s *state) writeString(kind string, v *ast.Node) {
	if v == nil {
		v = ast.FromString("")
	}
	isBytes := v.Type == ast.BytesType
	if isBytes && !strings.ContainsAny(kind, "bB") {
		kind += "b"
	}
	if token.IsRawPrefix(kind) {
		if q, ok := token.QuoteRaw(v.String, isBytes); ok {
			s.write(kind + q)
			return
		}
		kind = token.StripRaw(kind)
	}
	if isBytes {
		s.write(kind + token.QuoteBytes(v.String)[1:])
		return
	}
	s.write(kind + token.Quote(v.String))
}

// unparseFString writes a formatted string literal. Replacement fields are
// unparsed as expressions, so the delimiter is picked among those which
// do not occur anywhere in the body.
func unparseFString(s *state, n *ast.Node) {
	var sb strings.Builder
	if n.Kind == "FormattedValue" {
		s.fstringField(&sb, n)
	} else {
		s.fstringParts(&sb, n)
	}
	if s.err != nil {
		return
	}
	v := sb.String()
	delims := token.Delimiters
	if strings.ContainsAny(v, "\n\r") {
		delims = delims[2:]
	}
	for _, d := range delims {
		if !strings.Contains(v, d) {
			s.write("f" + d + v + d)
			return
		}
	}
	// v is already escaped apart from the delimiter and newlines.
	s.write("f'" + strings.NewReplacer("'", `\'`, "\n", `\n`).Replace(v) + "'")
}

func (s *state) fstringParts(sb *strings.Builder, n *ast.Node) {
	for _, part := range n.List("values") {
		switch {
		case part.IsKind("Str"):
			sb.WriteString(fstringText(part.Str("s")))
		case part.IsKind("Constant"):
			sb.WriteString(fstringText(part.Field("value").String))
		case part.IsKind("FormattedValue"):
			s.fstringField(sb, part)
		case part.IsKind("JoinedStr"):
			s.fstringParts(sb, part)
		default:
			panic("unparse: unexpected f-string part " + part.Kind)
		}
	}
}

func fstringText(v string) string {
	return strings.NewReplacer(
		"{", "{{",
		"}", "}}",
		`\`, `\\`,
		"\r", `\r`,
		"\x00", `\x00`,
	).Replace(v)
}

func (s *state) fstringField(sb *strings.Builder, n *ast.Node) {
	var expr strings.Builder
	sub := &state{w: &expr, indent: s.indent}
	sub.dispatch(n.Field("value"))
	if sub.err != nil && s.err == nil {
		s.err = sub.err
	}
	sb.WriteString("{")
	if strings.HasPrefix(expr.String(), "{") {
		// "{{" would be an escaped brace.
		sb.WriteString(" ")
	}
	sb.WriteString(expr.String())
	if c, ok := n.Field("conversion").Int(); ok && c != -1 {
		sb.WriteString("!" + string(rune(c)))
	}
	if spec := n.Field("format_spec"); spec.Truthy() {
		sb.WriteString(":")
		if spec.IsKind("JoinedStr") {
			s.fstringParts(sb, spec)
		} else {
			sb.WriteString(fstringText(spec.Str("s")))
		}
	}
	sb.WriteString("}")
}
