package main

import (
	"io"
	"os"

	"github.com/KimNorgaard/go-yso"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color output (default: when stdout is a terminal)'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages to stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colored reports whether output written to w is colored. An explicit
// -color wins; otherwise terminals get colors.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, sortKeys bool) []yso.Option {
	var res []yso.Option
	if sortKeys {
		res = append(res, yso.SortKeys())
	}
	if cfg.colored(w) {
		res = append(res, yso.WithColors(yso.NewColors()))
	}
	return res
}

func (cfg *MainConfig) errColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if cfg.colored(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the files'"`
	Diff  bool `cli:"name=d desc='print a diff instead of the result; exit 1 if a file differs'"`
	Sort  bool `cli:"name=sort desc='sort scopes and keys'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='treat lines that are not headers, pairs or comments as errors'"`

	Check *cli.Command
}

func (cfg *CheckConfig) parseOpts() []yso.Option {
	if cfg.Strict {
		return []yso.Option{yso.DisallowOrphans()}
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Sort bool `cli:"name=sort desc='sort scopes and keys'"`

	Merge *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	From bool `cli:"name=from desc='read YAML and write YSO'"`

	YAML *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Test bool `cli:"name=test desc='print nothing, exit 1 unless the expression is true'"`

	Eval *cli.Command
}
