package main

import (
	"bytes"
	"fmt"

	"github.com/KimNorgaard/go-yso"
	"github.com/KimNorgaard/go-yso/internal/textdiff"
	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are exclusive", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	differs := false
	for _, arg := range inputs(args) {
		if cfg.Write {
			if err := formatInPlace(arg, cfg.Sort); err != nil {
				return err
			}
			continue
		}
		in, err := readInput(arg)
		if err != nil {
			return err
		}
		if !cfg.Diff {
			res, err := yso.Format(in, cfg.encOpts(cc.Out, cfg.Sort)...)
			if err != nil {
				return fmt.Errorf("error formatting %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(res); err != nil {
				return err
			}
			continue
		}
		out, err := canonical(in, cfg.Sort)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if bytes.Equal(in, out) {
			continue
		}
		differs = true
		diffs := textdiff.Lines(string(in), string(out))
		if err := textdiff.Write(cc.Out, arg, diffs, cfg.colored(cc.Out)); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// formatInPlace rewrites the file name in canonical form.
func formatInPlace(name string, sortKeys bool) error {
	changed, err := yso.FormatFile(name, sortOpts(sortKeys)...)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", name, err)
	}
	theLog.Debug("formatted", "file", name, "changed", changed)
	return nil
}

// canonical returns the uncolored canonical text of in. Comments are kept.
func canonical(in []byte, sortKeys bool) ([]byte, error) {
	return yso.Format(in, sortOpts(sortKeys)...)
}

func sortOpts(sortKeys bool) []yso.Option {
	if sortKeys {
		return []yso.Option{yso.SortKeys()}
	}
	return nil
}
