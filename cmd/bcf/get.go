package main

import (
	"fmt"

	"github.com/bconf-format/bconf/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tree path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range orStdin(args[1:]) {
		node, err := loadArg(arg, cfg.parseOpts(arg))
		if err != nil {
			return err
		}
		res := node.GetPath(path)
		if res == nil {
			// absent is not an error, just no output
			continue
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
