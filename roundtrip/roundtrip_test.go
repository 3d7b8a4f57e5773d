package roundtrip

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/unparse"
)

func name(id string) *ast.Node {
	return ast.New("Name").With("id", ast.FromString(id)).With("ctx", ast.New("Load"))
}

func addition(a, b string) *ast.Node {
	return ast.New("Expression").With("body", ast.New("BinOp").
		With("left", name(a)).
		With("op", ast.New("Add")).
		With("right", name(b)))
}

// tableParser reads back source text by looking it up.
type tableParser map[string]*ast.Node

func (tp tableParser) Parse(src string) (*ast.Node, error) {
	t, ok := tp[src]
	if !ok {
		return nil, fmt.Errorf("invalid syntax: %q", src)
	}
	return t, nil
}

func TestCheck(t *testing.T) {
	tree := addition("a", "b")
	calls := 0
	p := ParserFunc(func(src string) (*ast.Node, error) {
		calls++
		return tableParser{"(a + b)\n": addition("a", "b")}.Parse(src)
	})
	src, err := Check(tree, p, 0)
	if err != nil {
		t.Fatal(err)
	}
	if src != "(a + b)\n" {
		t.Errorf("got %q", src)
	}
	if calls != DefaultIterations {
		t.Errorf("parsed %d times", calls)
	}
}

func TestCheckNegativeLiteral(t *testing.T) {
	// A negative literal reads back as a negation.
	lit := ast.New("Expression").With("body",
		ast.New("Constant").With("value", ast.FromInt(-1)).With("kind", nil))
	neg := ast.New("Expression").With("body", ast.New("UnaryOp").
		With("op", ast.New("USub")).
		With("operand", ast.New("Constant").With("value", ast.FromInt(1)).With("kind", nil)))
	src, err := Check(lit, tableParser{"(- 1)\n": neg}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if src != "(- 1)\n" {
		t.Errorf("got %q", src)
	}
}

func TestCheckMismatch(t *testing.T) {
	p := tableParser{"(a + b)\n": addition("a", "c"), "(a + c)\n": addition("a", "c")}
	_, err := Check(addition("a", "b"), p, 4)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "-(a + b)") || !strings.Contains(err.Error(), "+(a + c)") {
		t.Errorf("no diff in %v", err)
	}
}

func TestCheckTreeMismatch(t *testing.T) {
	first := ast.New("Expression").With("body", name("a"))
	second := ast.New("Expression").With("body", ast.New("Name").
		With("id", ast.FromString("a")).
		With("ctx", ast.New("Store")))
	n := 0
	p := ParserFunc(func(string) (*ast.Node, error) {
		n++
		if n == 1 {
			return first, nil
		}
		return second, nil
	})
	_, err := Check(first, p, 3)
	if !errors.Is(err, ErrMismatch) || !strings.Contains(err.Error(), "tree of pass 2") {
		t.Fatalf("got %v", err)
	}
}

func TestCheckParseError(t *testing.T) {
	_, err := Check(addition("a", "b"), tableParser{}, 1)
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestCheckUnparseError(t *testing.T) {
	tree := ast.New("AnnAssign").
		With("target", ast.FromSlice(name("a"), name("b"))).
		With("annotation", name("int")).
		With("value", nil).
		With("simple", ast.FromInt(1))
	if _, err := Check(tree, tableParser{}, 1); !errors.Is(err, unparse.ErrMultipleTargets) {
		t.Errorf("got %v", err)
	}
}
