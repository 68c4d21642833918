package main

import (
	"fmt"

	"github.com/KimNorgaard/go-yso"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: get requires a scope, a key and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 3 {
		file = args[2]
	}
	in, err := readInput(file)
	if err != nil {
		return err
	}
	v, err := getValue(in, args[0], args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}

func getValue(in []byte, scope, key string) (string, error) {
	if scope == "." {
		scope = yso.Global
	}
	doc, err := yso.Parse(in)
	if err != nil {
		return "", err
	}
	s, err := doc.Lookup(scope)
	if err != nil {
		return "", err
	}
	return s.Get(key)
}
