package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bconf-format/bconf/encode"
	"github.com/bconf-format/bconf/include"
	"github.com/bconf-format/bconf/parse"
	"github.com/bconf-format/bconf/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool   `cli:"name=color desc='encode with color'"`
	Strict    bool   `cli:"name=strict desc='fail when an include matches nothing'"`
	NoInc     bool   `cli:"name=noinc desc='keep include directives instead of resolving them'"`
	RawSuffix string `cli:"name=rawsuffix desc='key suffix marking verbatim blocks'"`
	IndentN   int    `cli:"name=indent desc='spaces per nesting level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// parseOpts builds the parse options for one input file.  Includes
// resolve relative to the file's directory unless -noinc is given;
// stdin gets no resolver since it has no directory.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	res := []parse.ParseOption{}
	if !cfg.NoInc && file != "" && file != "-" {
		dir := filepath.Dir(file)
		res = append(res,
			parse.WithResolver(include.Dir(dir)),
			parse.WithBase(dir),
			parse.StrictIncludes(cfg.Strict))
	}
	if cfg.RawSuffix != "" {
		res = append(res, parse.WithTokenOptions(token.RawSuffix(cfg.RawSuffix)))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.IndentN > 0 {
		res = append(res, encode.Indent(cfg.IndentN))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

// fmt never inlines includes, a formatter must not rewrite structure.
func (cfg *FmtConfig) parseOpts(file string) []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.RawSuffix != "" {
		res = append(res, parse.WithTokenOptions(token.RawSuffix(cfg.RawSuffix)))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=w desc='filter expression over key, path, type, value, depth'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Y bool `cli:"name=y aliases=yaml desc='export YAML'"`
	J bool `cli:"name=j aliases=json desc='export JSON'"`

	Export *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File  bool `cli:"name=f desc='patch arg is a file path'"`
	Merge bool `cli:"name=merge desc='apply as a JSON merge patch'"`

	Patch *cli.Command
}
