package main

import (
	"fmt"
	"io"

	"github.com/signadot/astunparse/libdiff"
	"github.com/signadot/astunparse/unparse"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadTree(cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadTree(cc, args[1])
	if err != nil {
		return err
	}
	var d string
	if cfg.Trees {
		d = libdiff.Trees(a, b)
	} else {
		from, err := unparse.String(a, cfg.unparseOpts()...)
		if err != nil {
			return fmt.Errorf("error unparsing %s: %w", args[0], err)
		}
		to, err := unparse.String(b, cfg.unparseOpts()...)
		if err != nil {
			return fmt.Errorf("error unparsing %s: %w", args[1], err)
		}
		d = libdiff.Unified(from, to)
	}
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
