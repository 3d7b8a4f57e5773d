package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/dump"
)

// Tree wraps a node so that it prints as a dump.
type Tree struct{ *ast.Node }

func (t Tree) String() string {
	return dump.String(t.Node, dump.IncludeAttributes(true))
}

// Logf writes a formatted message to stderr. Nodes are rendered as dumps,
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ast.Node:
			args[i] = Tree{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
