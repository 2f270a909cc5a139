package main

import (
	"fmt"

	"github.com/bconf-format/bconf/gomap"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	pd := []byte(args[0])
	if cfg.File {
		pd, err = readArg(args[0])
		if err != nil {
			return err
		}
	}
	apply, err := mkApply(cfg, pd)
	if err != nil {
		return fmt.Errorf("%w: bad patch: %v", cli.ErrUsage, err)
	}
	for _, arg := range orStdin(args[1:]) {
		node, err := loadArg(arg, cfg.parseOpts(arg))
		if err != nil {
			return err
		}
		doc, err := gomap.MarshalJSON(node)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		out, err := apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		res, err := gomap.UnmarshalJSON(out)
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// mkApply builds the patch application, RFC 6902 operations by
// default, RFC 7386 merge semantics under -merge.
func mkApply(cfg *PatchConfig, pd []byte) (func([]byte) ([]byte, error), error) {
	if cfg.Merge {
		return func(doc []byte) ([]byte, error) {
			return jsonpatch.MergePatch(doc, pd)
		}, nil
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	return ops.Apply, nil
}
