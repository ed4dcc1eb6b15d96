package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xj").
		WithSynopsis("xj [opts] command [opts]").
		WithDescription("xj converts between XML documents and JSON or YAML trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xjMain(cfg, cc, args)
		}).
		WithSubs(
			JSONCommand(cfg),
			XMLCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			StreamCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithSynopsis("json [-prefix p] [-suffix s] [files]").
		WithDescription("convert XML documents to JSON, or YAML with -O yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func XMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &XMLConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("xml").
		WithAliases("x").
		WithSynopsis("xml [-root name] [files]").
		WithDescription("convert JSON or YAML documents to XML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toXML(cfg, cc, args)
		})
	cfg.XML = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <pointer> [files]").
		WithDescription("get the values addressed by a JSON pointer").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <pointer> <value> [files]").
		WithDescription("replace the value addressed by a JSON pointer with a JSON or YAML value").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func StreamCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StreamConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("stream").
		WithAliases("st").
		WithSynopsis("stream [-e expr] [-containers] [-records] [files]").
		WithDescription(streamDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return streamFiles(cfg, cc, args)
		})
	cfg.Stream = cmd
	return cmd
}

const streamDescription = `stream prints every key and array element of converted documents,
one per line as its pointer followed by its JSON value.

Records can be filtered with an expr-lang expression.  The expression sees

  key    the object key, or the key of the enclosing array
  path   the JSON pointer of the value
  value  the value
  type   one of Null, Bool, Number, String, Array, Object
  depth  the number of pointer tokens

and the functions getpath(pointer), which resolves a pointer from the
document root, and getenv(name).  For example

  xj stream -e 'type == "Number" && hasPrefix(path, "/catalog/book")' cat.xml`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-patch] a b").
		WithDescription("diff two documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-merge] <patch.json> [files]").
		WithDescription("apply a JSON Patch or JSON merge patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchFiles(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
