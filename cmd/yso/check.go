package main

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-yso"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if n := checkInputs(cfg, cc.Out, inputs(args)); n > 0 {
		theLog.Debug("check failed", "files", n)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInputs reports every input that cannot be read or parsed to w and
// returns how many failed.
func checkInputs(cfg *CheckConfig, w io.Writer, names []string) int {
	red := cfg.errColor(w)
	failed := 0
	for _, name := range names {
		err := checkInput(name, cfg.parseOpts()...)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: %s\n", name, red.Sprint(err.Error()))
			continue
		}
		theLog.Debug("ok", "file", name)
	}
	return failed
}

func checkInput(name string, opts ...yso.Option) error {
	data, err := readInput(name)
	if err != nil {
		return err
	}
	_, ok, err := yso.TryParse(data, opts...)
	if !ok {
		return err
	}
	return nil
}
