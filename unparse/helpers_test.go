package unparse

import "github.com/signadot/astunparse/ast"

func name(id string) *ast.Node {
	return ast.New("Name").With("id", ast.FromString(id)).With("ctx", ast.New("Load"))
}

func store(id string) *ast.Node {
	return ast.New("Name").With("id", ast.FromString(id)).With("ctx", ast.New("Store"))
}

func str(v string) *ast.Node {
	return ast.New("Str").With("s", ast.FromString(v)).With("kind", ast.FromString(""))
}

func num(v int64) *ast.Node {
	return ast.New("Num").With("n", ast.FromInt(v))
}

func noneConst() *ast.Node {
	return ast.New("NameConstant").With("value", ast.None())
}

func boolConst(v bool) *ast.Node {
	return ast.New("NameConstant").With("value", ast.FromBool(v))
}

func call(fn *ast.Node, args ...*ast.Node) *ast.Node {
	return ast.New("Call").
		With("func", fn).
		With("args", ast.FromSlice(args...)).
		With("keywords", ast.FromSlice())
}

func expr(v *ast.Node) *ast.Node {
	return ast.New("Expr").With("value", v)
}

func tcomment(v string) *ast.Node {
	if v == "" {
		return ast.None()
	}
	return ast.FromString(v)
}

func param(a string, annotation *ast.Node, tc string) *ast.Node {
	return ast.New("arg").
		With("arg", ast.FromString(a)).
		With("annotation", annotation).
		With("type_comment", tcomment(tc))
}

type arguments struct {
	args       []*ast.Node
	vararg     *ast.Node
	kwonly     []*ast.Node
	kwDefaults []*ast.Node
	kwarg      *ast.Node
	defaults   []*ast.Node
}

func (a arguments) node() *ast.Node {
	return ast.New("arguments").
		With("args", ast.FromSlice(a.args...)).
		With("vararg", a.vararg).
		With("kwonlyargs", ast.FromSlice(a.kwonly...)).
		With("kw_defaults", ast.FromSlice(a.kwDefaults...)).
		With("kwarg", a.kwarg).
		With("defaults", ast.FromSlice(a.defaults...))
}

func funcDef(fname string, args arguments, body []*ast.Node, decos []*ast.Node, returns *ast.Node, tc string) *ast.Node {
	return ast.New("FunctionDef").
		With("name", ast.FromString(fname)).
		With("args", args.node()).
		With("body", ast.FromSlice(body...)).
		With("decorator_list", ast.FromSlice(decos...)).
		With("returns", returns).
		With("type_comment", tcomment(tc))
}

func ret(v *ast.Node) *ast.Node {
	return ast.New("Return").With("value", v)
}

func not(v *ast.Node) *ast.Node {
	return ast.New("UnaryOp").With("op", ast.New("Not")).With("operand", v)
}

func pass() *ast.Node {
	return ast.New("Pass")
}

func list(elts ...*ast.Node) *ast.Node {
	return ast.New("List").With("elts", ast.FromSlice(elts...)).With("ctx", ast.New("Load"))
}

func tuple(ctx string, elts ...*ast.Node) *ast.Node {
	return ast.New("Tuple").With("elts", ast.FromSlice(elts...)).With("ctx", ast.New(ctx))
}

func withItem(ctx, vars *ast.Node) *ast.Node {
	return ast.New("withitem").With("context_expr", ctx).With("optional_vars", vars)
}

func attr(v *ast.Node, a string) *ast.Node {
	return ast.New("Attribute").With("value", v).With("attr", ast.FromString(a)).With("ctx", ast.New("Load"))
}

func assign(targets []*ast.Node, v *ast.Node, tc *ast.Node) *ast.Node {
	return ast.New("Assign").
		With("targets", ast.FromSlice(targets...)).
		With("value", v).
		With("type_comment", tc)
}

func ifStmt(test *ast.Node, body, orelse []*ast.Node) *ast.Node {
	return ast.New("If").
		With("test", test).
		With("body", ast.FromSlice(body...)).
		With("orelse", ast.FromSlice(orelse...))
}
