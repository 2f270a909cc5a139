package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bconf-format/bconf/encode"
	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/parse"
)

// readArg reads a file argument, "-" meaning stdin.
func readArg(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", file, err)
	}
	return d, nil
}

func loadArg(file string, opts []parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(file)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

// orStdin defaults an empty argument list to stdin.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// writeNode renders any tree node: blocks encode as config text,
// scalars print bare, lists print element by element, raw bodies
// print line by line.
func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	switch node.Type {
	case ir.BlockType:
		return encode.Encode(node, w, cfg.encOpts(w)...)
	case ir.ScalarType:
		_, err := fmt.Fprintln(w, node.Scalar)
		return err
	case ir.RawType:
		for _, ln := range node.Lines {
			if _, err := fmt.Fprintln(w, ln); err != nil {
				return err
			}
		}
		return nil
	case ir.ListType:
		for _, v := range node.Values {
			if err := writeNode(cfg, w, v); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("cannot render %s", node.Type)
}
