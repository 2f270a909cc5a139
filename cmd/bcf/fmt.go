package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bconf-format/bconf/encode"
	"github.com/bconf-format/bconf/parse"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range orStdin(args) {
		if err := fmtArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, file string) error {
	d, err := readArg(file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if !cfg.Write || file == "-" {
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.Indent(indentOf(cfg.MainConfig))); err != nil {
		return err
	}
	if bytes.Equal(buf.Bytes(), d) {
		return nil
	}
	return writeFileAtomic(file, buf.Bytes())
}

func indentOf(cfg *MainConfig) int {
	if cfg.IndentN > 0 {
		return cfg.IndentN
	}
	return 4
}

// writeFileAtomic writes via a temp file in the same directory and
// renames over the target, so a crash never leaves a half-written
// config.
func writeFileAtomic(file string, d []byte) error {
	dir := filepath.Dir(file)
	tmp, err := os.CreateTemp(dir, filepath.Base(file)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(file); err == nil {
		if err := os.Chmod(tmp.Name(), fi.Mode()); err != nil {
			return err
		}
	}
	return os.Rename(tmp.Name(), file)
}
