package main

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-yso"
	"github.com/KimNorgaard/go-yso/internal/query"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: eval requires an expression and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	in, err := readInput(file)
	if err != nil {
		return err
	}
	ok, err := evalSource(cc.Out, in, args[0], cfg.Test)
	if err != nil {
		return fmt.Errorf("error evaluating %s: %w", file, err)
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// evalSource evaluates code against in. With test set the expression must
// be boolean; its value is returned and nothing is written. Otherwise the
// result is written to w.
func evalSource(w io.Writer, in []byte, code string, test bool) (bool, error) {
	doc, err := yso.Parse(in)
	if err != nil {
		return false, err
	}
	if test {
		return query.Match(code, doc)
	}
	res, err := query.Eval(code, doc)
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintln(w, query.Format(res))
	return err == nil, err
}
