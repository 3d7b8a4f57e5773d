package token

import (
	"strings"
	"unicode/utf8"
)

// Delimiters lists the quote styles a raw literal may use, in order of
// preference.
var Delimiters = []string{`'`, `"`, `'''`, `"""`}

// RawDelimiter picks the first delimiter which lets v appear verbatim
// inside a raw literal. Content with a newline may only use the triple
// quoted styles. It returns false when no delimiter works or when v
// cannot be written raw at all: a carriage return, a NUL, an odd run of
// trailing backslashes, invalid UTF-8, or (for byte strings) a non ASCII
// byte.
func RawDelimiter(v string, isBytes bool) (string, bool) {
	if !rawSafe(v, isBytes) {
		return "", false
	}
	cands := Delimiters
	if strings.IndexByte(v, '\n') != -1 {
		cands = Delimiters[2:]
	}
	for _, d := range cands {
		if strings.Contains(v, d) {
			continue
		}
		if len(d) == 3 && strings.HasSuffix(v, d[:1]) {
			continue
		}
		return d, true
	}
	return "", false
}

// QuoteRaw wraps v in the delimiter chosen by RawDelimiter. It returns
// false when no delimiter can hold v unchanged, since a backslash before a
// quote stays part of a raw literal's content. Callers then write the
// escaped, non-raw form.
func QuoteRaw(v string, isBytes bool) (string, bool) {
	d, ok := RawDelimiter(v, isBytes)
	if !ok {
		return "", false
	}
	return d + v + d, true
}

// IsRawPrefix reports whether a string prefix such as "r", "Rb" or "br"
// marks a raw literal.
func IsRawPrefix(prefix string) bool {
	return strings.ContainsAny(prefix, "rR")
}

// StripRaw removes the raw marker from a string prefix.
func StripRaw(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == 'r' || r == 'R' {
			return -1
		}
		return r
	}, prefix)
}

func rawSafe(v string, isBytes bool) bool {
	if strings.ContainsAny(v, "\r\x00") {
		return false
	}
	if isBytes {
		for i := 0; i < len(v); i++ {
			if v[i] >= 0x80 {
				return false
			}
		}
	} else if !utf8.ValidString(v) {
		return false
	}
	n := len(v) - len(strings.TrimRight(v, `\`))
	return n%2 == 0
}
