package main

import (
	"fmt"

	"github.com/bconf-format/bconf/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = expr.Compile(cfg.Where, expr.Env(listEnv(nil)), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad filter %q: %v", cli.ErrUsage, cfg.Where, err)
		}
	}
	for _, arg := range orStdin(args) {
		node, err := loadArg(arg, cfg.parseOpts(arg))
		if err != nil {
			return err
		}
		if err := listNode(cfg, cc, node, prog); err != nil {
			return fmt.Errorf("error listing %s: %w", arg, err)
		}
	}
	return nil
}

type listEnv map[string]any

func listNode(cfg *ListConfig, cc *cli.Context, node *ir.Node, prog *vm.Program) error {
	return node.Walk(func(p ir.Path, n *ir.Node) error {
		if len(p) == 0 {
			return nil
		}
		if prog != nil {
			env := listEnv{
				"key":   lastKey(p),
				"path":  p.String(),
				"type":  n.Type.String(),
				"value": n.Scalar,
				"depth": len(p),
			}
			keep, err := expr.Run(prog, env)
			if err != nil {
				return err
			}
			if !keep.(bool) {
				return nil
			}
		}
		if n.Type == ir.ScalarType {
			_, err := fmt.Fprintf(cc.Out, "%s\t%s\n", p, n.Scalar)
			return err
		}
		_, err := fmt.Fprintln(cc.Out, p)
		return err
	})
}

func lastKey(p ir.Path) string {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsIndex {
			return p[i].Key
		}
	}
	return ""
}
