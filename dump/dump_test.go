package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/astunparse/ast"
)

func name(id string) *ast.Node {
	return ast.New("Name").With("id", ast.FromString(id)).With("ctx", ast.New("Load"))
}

func addition() *ast.Node {
	return ast.New("BinOp").
		With("left", name("a")).
		With("op", ast.New("Add")).
		With("right", name("b"))
}

func squash(v string) string {
	return strings.NewReplacer("\n", "", " ", "").Replace(v)
}

func TestDumpLayout(t *testing.T) {
	want := "BinOp(\n" +
		"  left=Name(\n" +
		"    id='a',\n" +
		"    ctx=Load()),\n" +
		"  op=Add(),\n" +
		"  right=Name(\n" +
		"    id='b',\n" +
		"    ctx=Load()))"
	if got := String(addition()); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDumpExamples(t *testing.T) {
	arg := ast.New("arg").
		With("arg", ast.FromString("arg")).
		With("annotation", nil).
		With("type_comment", nil)
	fn := ast.New("FunctionDef").
		With("name", ast.FromString("negation")).
		With("args", ast.New("arguments").
			With("args", ast.FromSlice(arg)).
			With("vararg", nil).
			With("kwonlyargs", ast.FromSlice()).
			With("kw_defaults", ast.FromSlice()).
			With("kwarg", nil).
			With("defaults", ast.FromSlice())).
		With("body", ast.FromSlice(ast.New("Return").With("value",
			ast.New("UnaryOp").With("op", ast.New("Not")).With("operand", name("arg"))))).
		With("decorator_list", ast.FromSlice()).
		With("returns", nil).
		With("type_comment", nil)
	assign := ast.New("Assign").
		With("targets", ast.FromSlice(ast.New("Name").With("id", ast.FromString("my_string")).With("ctx", ast.New("Store")))).
		With("value", ast.New("NameConstant").With("value", nil)).
		With("type_comment", ast.FromString("str"))
	tests := []struct {
		name string
		tree *ast.Node
		dump string
	}{
		{
			name: "addition",
			tree: addition(),
			dump: "BinOp(left=Name(id='a',ctx=Load()),op=Add(),right=Name(id='b',ctx=Load()))",
		},
		{
			name: "function",
			tree: fn,
			dump: "FunctionDef(name='negation',args=arguments(" +
				"args=[arg(arg='arg',annotation=None,type_comment=None)]," +
				"vararg=None,kwonlyargs=[],kw_defaults=[],kwarg=None,defaults=[])," +
				"body=[Return(value=UnaryOp(op=Not(),operand=Name(id='arg',ctx=Load())))]," +
				"decorator_list=[],returns=None,type_comment=None)",
		},
		{
			name: "assignment with type comment",
			tree: assign,
			dump: "Assign(targets=[Name(id='my_string',ctx=Store())],value=NameConstant(value=None),type_comment='str')",
		},
		{
			name: "raw bytes",
			tree: ast.New("Bytes").
				With("s", ast.FromBytes([]byte(`1"""2'3"4\'\'\'\n`))).
				With("kind", ast.FromString("br")),
			dump: `Bytes(s=b'1"""2\'3"4\\\'\\\'\\\'\\n',kind='br')`,
		},
		{
			name: "primitives",
			tree: ast.FromSlice(ast.FromFloat(1), ast.FromComplex(2), ast.FromBool(true), ast.Ellipsis(), ast.FromBigInt("99999999999999999999")),
			dump: "[1.0,2j,True,Ellipsis,99999999999999999999]",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := squash(String(test.tree)); got != test.dump {
				t.Errorf("got\n%s\nwant\n%s", got, test.dump)
			}
		})
	}
}

func TestDumpSingleEntryInline(t *testing.T) {
	tree := ast.New("Expr").With("value", ast.FromSlice(ast.New("Pass")))
	if got := String(tree); got != "Expr(value=[Pass()])" {
		t.Errorf("got %q", got)
	}
}

func TestAnnotateFields(t *testing.T) {
	got := squash(String(addition(), AnnotateFields(false)))
	if want := "BinOp(Name('a',Load()),Add(),Name('b',Load()))"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestDumpDeterministic(t *testing.T) {
	tree := addition().WithPos(1, 0)
	for _, opts := range [][]DumpOption{
		nil,
		{AnnotateFields(false)},
		{IncludeAttributes(true)},
		{AnnotateFields(false), IncludeAttributes(true)},
	} {
		if a, b := String(tree, opts...), String(tree, opts...); a != b {
			t.Errorf("dumps differ:\n%s\n%s", a, b)
		}
	}
}

func TestIncludeAttributes(t *testing.T) {
	plain := addition()
	if String(plain) != String(plain, IncludeAttributes(true)) {
		t.Error("dump without attributes changed by IncludeAttributes")
	}

	positioned := addition()
	positioned.Field("left").WithPos(1, 0)
	without := String(positioned)
	with := String(positioned, IncludeAttributes(true))
	if without == with {
		t.Fatal("attributes not dumped")
	}
	want := "left=Name(id='a',ctx=Load(),lineno=1,col_offset=0)"
	if !strings.Contains(squash(with), want) {
		t.Errorf("%s does not contain %s", squash(with), want)
	}
	if without != String(addition()) {
		t.Error("attributes dumped without IncludeAttributes")
	}
}

func TestWithIndent(t *testing.T) {
	got := String(ast.FromSlice(ast.FromInt(1), ast.FromInt(2)), WithIndent("\t"))
	if want := "[\n\t1,\n\t2]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestColors(t *testing.T) {
	mark := func(tag string) func(string, ...any) string {
		return func(v string, _ ...any) string { return "<" + tag + ":" + v + ">" }
	}
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ast.NodeType, Attr: KindColor}:    mark("k"),
			{Type: ast.NodeType, Attr: FieldColor}:   mark("f"),
			{Type: ast.StringType, Attr: ValueColor}: mark("s"),
		},
	}
	got := String(ast.New("Name").With("id", ast.FromString("a")), WithColors(c))
	if want := "<k:Name>(<f:id>=<s:'a'>)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if NewColors().Get(ast.NodeType, KindColor) == nil {
		t.Error("no kind color")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestDumpWriteError(t *testing.T) {
	if err := Dump(addition(), failWriter{}); err != bytes.ErrTooLarge {
		t.Errorf("got %v", err)
	}
}
