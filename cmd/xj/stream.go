package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xj"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/parse"
	"github.com/signadot/xj/stream"
)

func streamFiles(cfg *StreamConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stream.Parse(cc, args)
	if err != nil {
		cfg.Stream.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var q *stream.Query
	if cfg.Expr != "" {
		q, err = stream.Compile(cfg.Expr)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	var pattern *ir.Node
	if cfg.Match != "" {
		pattern, err = parse.DecodeValue([]byte(cfg.Match))
		if err != nil {
			return fmt.Errorf("%w: bad pattern: %w", cli.ErrUsage, err)
		}
	}
	for _, path := range inputs(args) {
		root, err := readTree(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", path, err)
		}
		recs := stream.Stream(root)
		if cfg.Containers {
			recs = stream.Filter(recs, stream.IsContainer)
		}
		if pattern != nil {
			recs = stream.Filter(recs, func(r stream.Record) bool {
				return xj.Match(r.Value, pattern)
			})
		}
		if q != nil {
			recs = q.Filter(recs)
		}
		if pattern != nil && cfg.Trim {
			recs = stream.Map(recs, func(r stream.Record) stream.Record {
				r.Value = xj.Trim(pattern, r.Value)
				return r
			})
		}
		n := 0
		for rec := range recs {
			n++
			if cfg.Records {
				fmt.Fprint(cc.Out, rec.String())
				continue
			}
			v, err := rec.Value.MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "%s\t%s\n", rec.Path, v)
		}
		if q != nil && q.Err() != nil {
			return q.Err()
		}
		cfg.logf("streamed", "file", path, "records", n)
	}
	return nil
}
