package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/ir/pointer"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a pointer", cli.ErrUsage)
	}
	p, err := pointer.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	missing := false
	for _, path := range inputs(args[1:]) {
		root, err := readTree(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", path, err)
		}
		node, err := root.Resolve(p)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", args[0], path, err)
		}
		if node == nil {
			theLog.Warn("not found", "pointer", args[0], "file", path)
			missing = true
			continue
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, format.JSONFormat)...); err != nil {
			return err
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
