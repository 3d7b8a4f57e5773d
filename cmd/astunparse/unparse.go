package main

import (
	"os"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/unparse"

	"github.com/scott-cotton/cli"
)

func unparseCmd(cfg *UnparseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unparse.Parse(cc, args)
	if err != nil {
		return err
	}
	var opts []ast.LoadOption
	if cfg.Patch != "" {
		p, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
		opts = append(opts, ast.LoadPatch(p))
	}
	return eachTree(cc, args, func(i int, n *ast.Node) error {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		return unparse.Unparse(n, cc.Out, cfg.unparseOpts()...)
	}, opts...)
}
