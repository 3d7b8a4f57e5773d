package main

import (
	"io"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/dump"

	"github.com/scott-cotton/cli"
)

func dumpCmd(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.dumpOpts(cc.Out)
	return eachTree(cc, args, func(i int, n *ast.Node) error {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := dump.Dump(n, cc.Out, opts...); err != nil {
			return err
		}
		_, err := io.WriteString(cc.Out, "\n")
		return err
	})
}
