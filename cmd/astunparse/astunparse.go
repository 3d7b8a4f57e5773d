package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/astunparse/ast"
	"github.com/signadot/astunparse/debug"

	"github.com/scott-cotton/cli"
)

const docSep = "\n---\n"

func astunparseMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// eachTree calls f with every tree document in files, or in stdin when
// files is empty. Documents in one input are separated by "---" lines.
func eachTree(cc *cli.Context, files []string, f func(i int, n *ast.Node) error, opts ...ast.LoadOption) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	i := 0
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		for j, doc := range bytes.Split(d, []byte(docSep)) {
			n, err := ast.Load(doc, opts...)
			if err != nil {
				return fmt.Errorf("error decoding document %d of %s: %w", j, file, err)
			}
			if debug.Load() {
				debug.Logf("loaded document %d of %s:\n%v\n", j, file, n)
			}
			if err := f(i, n); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
			i++
		}
	}
	return nil
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

// loadTree reads a file holding exactly one tree document.
func loadTree(cc *cli.Context, file string) (*ast.Node, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	n, err := ast.Load(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return n, nil
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}
