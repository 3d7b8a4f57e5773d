package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/astunparse/dump"
	"github.com/signadot/astunparse/format"
	"github.com/signadot/astunparse/unparse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent int `cli:"name=indent desc='unparse indentation width'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) unparseOpts() []unparse.UnparseOption {
	return []unparse.UnparseOption{unparse.WithIndent(cfg.Indent)}
}

type UnparseConfig struct {
	*MainConfig
	Patch string `cli:"name=p aliases=patch desc='json patch file applied before unparsing'"`

	Unparse *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Bare  bool `cli:"name=bare desc='omit field names'"`
	Attrs bool `cli:"name=attrs desc='include position attributes'"`
	Color bool `cli:"name=color desc='dump with color'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	res := []dump.DumpOption{
		dump.AnnotateFields(!cfg.Bare),
		dump.IncludeAttributes(cfg.Attrs),
	}
	if cfg.Color {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Dump.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

type FindConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='query expression'"`
	Dump bool   `cli:"name=dump desc='dump matches instead of unparsing them'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Trees bool `cli:"name=trees desc='diff dumps instead of source'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat *format.Format

	Convert *cli.Command
}

func (cfg *ConvertConfig) fmtFunc(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

// outFormat is the -O format, or else the format suggested by the -o
// file name.
func (cfg *ConvertConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.FromPath(cfg.Out)
}
