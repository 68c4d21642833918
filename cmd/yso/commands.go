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

	return cli.NewCommandAt(&cfg.Main, "yso").
		WithSynopsis("yso [opts] command [opts]").
		WithDescription("yso formats, checks, queries and converts YSO configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ysoMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			MergeCommand(cfg),
			YAMLCommand(cfg),
			EvalCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [-d] [-sort] [files]").
		WithDescription("rewrite files in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-strict] [files]").
		WithDescription("report files that do not parse").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <scope> <key> [file]").
		WithDescription(getDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

const getDescription = `get prints the value of a key.

The global scope, holding the keys written before any section header, is
named '.'.`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-sort] files...").
		WithDescription("merge files in order, later files win, and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.YAML, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [-from] [file]").
		WithDescription(yamlDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlMain(cfg, cc, args)
		})
}

const yamlDescription = `yaml converts a YSO file to YAML, or with -from a YAML file to YSO.

The YAML form is one mapping. Scalar entries are keys of the global scope and
mapping entries are named scopes holding scalar values:

  name: Alice
  Pet:
    species: cat`

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [-test] <expr> [file]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates an expr-lang expression against a file.

Every named scope is a variable mapping keys to values, the global scope is
'global' and 'scopes' holds all scopes by name:

  yso eval 'Pet.species == "cat"' pets.yso
  yso eval 'int(Server.port) + 1' app.yso
  yso eval 'scopes["my scope"].key' app.yso
  yso eval 'lookup("Pet", "species")' pets.yso

With -test nothing is printed and the exit code is 1 unless the expression
is true.`
