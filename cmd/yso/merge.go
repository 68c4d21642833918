package main

import (
	"fmt"

	"github.com/KimNorgaard/go-yso"
	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	doc, err := mergeInputs(args)
	if err != nil {
		return err
	}
	out, err := yso.Marshal(doc, cfg.encOpts(cc.Out, cfg.Sort)...)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

func mergeInputs(names []string) (*yso.Document, error) {
	res := yso.New()
	for _, name := range names {
		in, err := readInput(name)
		if err != nil {
			return nil, err
		}
		doc, err := yso.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", name, err)
		}
		theLog.Debug("merging", "file", name, "scopes", doc.Len())
		res.Merge(doc)
	}
	return res, nil
}
