package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/parse"
)

func toXML(cfg *XMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.XML.Parse(cc, args)
	if err != nil {
		cfg.XML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, path := range inputs(args) {
		d, err := readInput(cc, path)
		if err != nil {
			return err
		}
		node, err := parse.DecodeValue(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		opts := cfg.encOpts(cc.Out, format.XMLFormat)
		if cfg.Root != "" {
			opts = append(opts, encode.RootName(cfg.Root))
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
	}
	return nil
}
