package main

import (
	"fmt"

	"github.com/bconf-format/bconf"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := loadArg(args[0], cfg.parseOpts(args[0]))
	if err != nil {
		return err
	}
	b, err := loadArg(args[1], cfg.parseOpts(args[1]))
	if err != nil {
		return err
	}
	d := bconf.Diff(a, b)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
