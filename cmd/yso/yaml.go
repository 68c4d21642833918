package main

import (
	"fmt"

	"github.com/KimNorgaard/go-yso"
	"github.com/KimNorgaard/go-yso/internal/convert"
	"github.com/scott-cotton/cli"
)

func yamlMain(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: yaml takes at most one file", cli.ErrUsage)
	}
	name := inputs(args)[0]
	in, err := readInput(name)
	if err != nil {
		return err
	}
	var out []byte
	if cfg.From {
		out, err = fromYAML(in, cfg.encOpts(cc.Out, false)...)
	} else {
		out, err = toYAML(in)
	}
	if err != nil {
		return fmt.Errorf("error converting %s: %w", name, err)
	}
	_, err = cc.Out.Write(out)
	return err
}

func toYAML(in []byte) ([]byte, error) {
	doc, err := yso.Parse(in)
	if err != nil {
		return nil, err
	}
	return convert.ToYAML(doc)
}

func fromYAML(in []byte, opts ...yso.Option) ([]byte, error) {
	doc, err := convert.FromYAML(in)
	if err != nil {
		return nil, err
	}
	return yso.Marshal(doc, opts...)
}
