package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Keep    bool   `cli:"name=k aliases=keep desc='keep element text as strings'"`
	Content string `cli:"name=content desc='key holding element text next to child elements'"`
	Nil     bool   `cli:"name=nil desc='convert xsi:nil elements to null'"`
	Config  string `cli:"name=config desc='toml configuration file'"`
	Indent  int    `cli:"name=indent desc='json output indentation'"`
	Verbose bool   `cli:"name=v desc='log progress to stderr'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	File        *FileConfig
	ParseConfig *parse.Config

	Main *cli.Command
}

// FileConfig is the content of the -config file.  Command line options take
// precedence over it.
type FileConfig struct {
	KeepStrings bool              `toml:"keep_strings"`
	ContentKey  string            `toml:"content_key"`
	ConvertNil  bool              `toml:"convert_nil"`
	Output      *format.Format    `toml:"output"`
	Indent      int               `toml:"indent"`
	RootName    string            `toml:"root_name"`
	TypeHints   map[string]string `toml:"type_hints"`
}

func loadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return fc, nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// setup reads the config file and builds the conversion config.
func (cfg *MainConfig) setup() error {
	if cfg.Config != "" {
		fc, err := loadFileConfig(cfg.Config)
		if err != nil {
			return err
		}
		cfg.File = &fc
		cfg.logf("loaded config", "file", cfg.Config)
	}
	if cfg.File == nil {
		cfg.File = &FileConfig{}
	}
	fc := cfg.File
	opts := []parse.ConfigOption{
		parse.KeepStrings(cfg.Keep || fc.KeepStrings),
		parse.ConvertNilToNull(cfg.Nil || fc.ConvertNil),
	}
	key := fc.ContentKey
	if cfg.Content != "" {
		key = cfg.Content
	}
	if key != "" {
		opts = append(opts, parse.ContentKey(key))
	}
	if len(fc.TypeHints) != 0 {
		hints := make(map[string]parse.TypeHint, len(fc.TypeHints))
		for name, typ := range fc.TypeHints {
			h := parse.BuiltinTypeHint(typ)
			if h == nil {
				return fmt.Errorf("%w: type hint %s: unknown type %q", cli.ErrUsage, name, typ)
			}
			hints[name] = h
		}
		opts = append(opts, parse.TypeHints(hints))
	}
	cfg.ParseConfig = parse.NewConfig(opts...)
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.ParseConfig == nil {
		return nil
	}
	return []parse.ParseOption{parse.WithConfig(cfg.ParseConfig)}
}

func (cfg *MainConfig) contentKey() string {
	if cfg.ParseConfig == nil {
		return parse.DefaultContentKey
	}
	return cfg.ParseConfig.ContentKey()
}

// encOpts returns the encoding options for w, writing def unless an output
// format is configured.
func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	fc := cfg.File
	if fc == nil {
		fc = &FileConfig{}
	}
	f := def
	if fc.Output != nil {
		f = *fc.Output
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	indent := fc.Indent
	if cfg.Indent != 0 {
		indent = cfg.Indent
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeContentKey(cfg.contentKey()),
		encode.Indent(indent),
	}
	if fc.RootName != "" {
		res = append(res, encode.RootName(fc.RootName))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f2, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f2.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type JSONConfig struct {
	*MainConfig
	Prefix string `cli:"name=prefix desc='prefix every key'"`
	Suffix string `cli:"name=suffix desc='suffix every key'"`

	JSON *cli.Command
}

func (cfg *JSONConfig) rename() func(string) string {
	if cfg.Prefix == "" && cfg.Suffix == "" {
		return nil
	}
	return func(k string) string {
		return cfg.Prefix + k + cfg.Suffix
	}
}

type XMLConfig struct {
	*MainConfig
	Root string `cli:"name=root desc='name of the enclosing element'"`

	XML *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type StreamConfig struct {
	*MainConfig
	Expr       string `cli:"name=e desc='expr-lang filter over key, path, value, type and depth'"`
	Containers bool   `cli:"name=containers desc='only objects and arrays'"`
	Records    bool   `cli:"name=records desc='print full records'"`
	Match      string `cli:"name=match desc='only values matching this JSON or YAML pattern'"`
	Trim       bool   `cli:"name=trim desc='trim matched values to the pattern'"`

	Stream *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='print a JSON Patch document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is a JSON merge patch'"`

	Patch *cli.Command
}
