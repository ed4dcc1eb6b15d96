package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/parse"
)

// toJSON converts all inputs concurrently and writes the results in
// argument order.
func toJSON(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		cfg.JSON.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	paths := inputs(args)
	readers, err := openInputs(cc, paths)
	if err != nil {
		return err
	}
	futures := make([]*parse.Future, len(paths))
	defer closeInputs(futures, readers)
	rename := cfg.rename()
	for i, r := range readers {
		if rename != nil {
			futures[i] = parse.ParseRenamedAsync(r, rename, cfg.parseOpts()...)
		} else {
			futures[i] = parse.ParseAsync(r, cfg.parseOpts()...)
		}
		cfg.logf("converting", "file", paths[i])
	}
	for i, fut := range futures {
		node, err := fut.Wait()
		if err != nil {
			return fmt.Errorf("error converting %s: %w", paths[i], err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, format.JSONFormat)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", paths[i], err)
		}
	}
	return nil
}

// openInputs opens every path or none of them.
func openInputs(cc *cli.Context, paths []string) ([]io.ReadCloser, error) {
	readers := make([]io.ReadCloser, 0, len(paths))
	for _, path := range paths {
		r, err := openInput(cc, path)
		if err != nil {
			for _, r := range readers {
				r.Close()
			}
			return nil, err
		}
		readers = append(readers, r)
	}
	return readers, nil
}

// closeInputs closes readers once the futures reading them are done.
func closeInputs(futures []*parse.Future, readers []io.ReadCloser) {
	for i, r := range readers {
		if futures[i] != nil {
			futures[i].Wait()
		}
		r.Close()
	}
}
