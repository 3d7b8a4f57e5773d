package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "astunparse").
		WithSynopsis("astunparse [opts] command [opts]").
		WithDescription("astunparse renders syntax tree documents as source text and dumps.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return astunparseMain(cfg, cc, args)
		}).
		WithSubs(
			UnparseCommand(cfg),
			DumpCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			ConvertCommand(cfg))
}

func UnparseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnparseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unparse, "unparse").
		WithAliases("u").
		WithSynopsis("unparse [-p patch] [files]").
		WithDescription("write the source text of tree documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unparseCmd(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-bare] [-attrs] [-color] [files]").
		WithDescription("write the structural dump of tree documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpCmd(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find -e expr [-dump] [files]").
		WithDescription("write the sub-trees for which a query expression holds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff [-trees] a b").
		WithDescription("diff the source text of two tree documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert -O format [files]").
		WithDescription("re-encode tree documents as json or yaml").
		WithOpts(&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc, "(format)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertCmd(cfg, cc, args)
		})
}
