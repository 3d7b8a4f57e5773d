package main

import (
	"fmt"
	"io"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/dump"
	"github.com/signadot/astunparse/query"
	"github.com/signadot/astunparse/unparse"

	"github.com/scott-cotton/cli"
)

func findCmd(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: find requires -e expr", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	count := 0
	return eachTree(cc, args, func(_ int, n *ast.Node) error {
		found, err := q.Find(n)
		if err != nil {
			return err
		}
		for _, m := range found {
			if err := writeSep(cc.Out, count); err != nil {
				return err
			}
			count++
			if err := writeMatch(cfg, cc.Out, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMatch renders m as source, falling back to a dump for nodes the
// unparser cannot place outside their parent (e.g. comprehension).
func writeMatch(cfg *FindConfig, w io.Writer, m *ast.Node) error {
	if !cfg.Dump {
		src, err := unparseMatch(cfg, m)
		if err == nil {
			_, err = io.WriteString(w, src)
			return err
		}
	}
	if err := dump.Dump(m, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func unparseMatch(cfg *FindConfig, m *ast.Node) (src string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot unparse %s: %v", m.Kind, r)
		}
	}()
	return unparse.String(m, cfg.unparseOpts()...)
}
