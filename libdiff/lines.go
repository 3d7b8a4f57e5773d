package libdiff

import (
	"strings"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/dump"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines returns the line by line difference of from and to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, diff := range diffs {
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Unified renders the difference of from and to with one prefixed line
// per input line, or returns "" if they are equal.
func Unified(from, to string) string {
	if from == to {
		return ""
	}
	var sb strings.Builder
	for _, ln := range Lines(from, to) {
		sb.WriteString(ln.Op.Prefix())
		sb.WriteString(ln.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Trees renders the difference of the dumps of a and b, attributes
// included.
func Trees(a, b *ast.Node) string {
	opts := []dump.DumpOption{dump.IncludeAttributes(true)}
	return Unified(dump.String(a, opts...), dump.String(b, opts...))
}
