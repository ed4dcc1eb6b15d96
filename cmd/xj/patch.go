package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/patch"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document", cli.ErrUsage)
	}
	d, err := readInput(cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, path := range inputs(args[1:]) {
		doc, err := readTree(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		var res *ir.Node
		if cfg.Merge {
			res, err = patch.Merge(doc, d)
		} else {
			res, err = patch.Apply(doc, d)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", path, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, format.XMLFormat)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
