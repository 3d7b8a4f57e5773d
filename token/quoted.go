package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns the canonical quoted representation of a text value.
// Single quotes are used unless v contains a single quote and no double
// quote.
func Quote(v string) string {
	q := quoteChar(v)
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte(q)
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&sb, "\\x%02x", v[i])
			i++
			continue
		}
		i += size
		switch {
		case r == rune(q) || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(&sb, "\\x%02x", r)
		case r < 0x7f:
			sb.WriteRune(r)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&sb, "\\x%02x", r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, "\\u%04x", r)
		default:
			fmt.Fprintf(&sb, "\\U%08x", r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

// QuoteBytes returns the canonical representation of a byte string
// including its b prefix.
func QuoteBytes(v string) string {
	q := quoteChar(v)
	var sb strings.Builder
	sb.Grow(len(v) + 3)
	sb.WriteByte('b')
	sb.WriteByte(q)
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == q || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < ' ' || c >= 0x7f:
			fmt.Fprintf(&sb, "\\x%02x", c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

func quoteChar(v string) byte {
	if strings.IndexByte(v, '\'') != -1 && strings.IndexByte(v, '"') == -1 {
		return '"'
	}
	return '\''
}
