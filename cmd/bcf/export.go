package main

import (
	"fmt"

	"github.com/bconf-format/bconf/gomap"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Y && cfg.J {
		return fmt.Errorf("%w: specify at most one of -y[aml] -j[son]", cli.ErrUsage)
	}
	marshal := gomap.MarshalYAML
	if cfg.J {
		marshal = gomap.MarshalJSON
	}
	files := orStdin(args)
	for i, arg := range files {
		node, err := loadArg(arg, cfg.parseOpts(arg))
		if err != nil {
			return err
		}
		d, err := marshal(node)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if !cfg.J && i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
