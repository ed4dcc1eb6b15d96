package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/parse"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a pointer and a value", cli.ErrUsage)
	}
	ptr := args[0]
	for _, path := range inputs(args[2:]) {
		v, err := parse.DecodeValue([]byte(args[1]))
		if err != nil {
			return fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, args[1], err)
		}
		r, err := openInput(cc, path)
		if err != nil {
			return err
		}
		root, err := parse.ReplaceAt(r, ptr, v, cfg.parseOpts()...)
		r.Close()
		if err != nil {
			return fmt.Errorf("error replacing %s in %s: %w", ptr, path, err)
		}
		if root == nil {
			return fmt.Errorf("%s: %s not found", path, ptr)
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out, format.XMLFormat)...); err != nil {
			return err
		}
	}
	return nil
}
