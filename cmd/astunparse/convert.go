package main

import (
	"github.com/signadot/astunparse/ast"

	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	f := cfg.outFormat()
	return eachTree(cc, args, func(i int, n *ast.Node) error {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		return ast.Encode(n, cc.Out, f)
	})
}
