package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/bconf-format/bconf/debug"
	"github.com/bconf-format/bconf/ir"
)

type EncState struct {
	depth  int
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as block-config text.  The node must be a block;
// its entries emit in insertion order, with sibling directive values
// aligned on a common column per block.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || node.Type != ir.BlockType {
		return fmt.Errorf("%w: top level must be a block", ErrEncoding)
	}
	if debug.Encode() {
		debug.Logf("encode block of %d entries, indent %d", len(node.Keys), es.indent)
	}
	return encodeBlock(node, w, es)
}

func encodeBlock(b *ir.Node, w io.Writer, es *EncState) error {
	pad := blockPad(b)
	for i, k := range b.Keys {
		if err := encodeEntry(k, b.Values[i], pad, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(key string, v *ir.Node, pad int, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.ScalarType:
		return writeDirective(key, v.Scalar, pad, w, es)
	case ir.BlockType:
		return writeBlock(key, v, w, es)
	case ir.ListType:
		for _, elt := range v.Values {
			if err := encodeEntry(key, elt, pad, w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.RawType:
		return writeRawLines(v, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s under %q", ErrEncoding, v.Type, key)
	}
}

// writeDirective emits one "key value;" line.  Values of sibling
// directives start at the block's pad column; a valueless directive
// is just "key;".
func writeDirective(key, val string, pad int, w io.Writer, es *EncState) error {
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ir.ScalarType, KeyColor, key)); err != nil {
		return err
	}
	if val != "" {
		n := pad - len(key)
		if n < 1 {
			n = 1
		}
		if err := writeString(w, strings.Repeat(" ", n)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ScalarType, ValueColor, val)); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ScalarType, SepColor, ";")+"\n")
}

func writeBlock(key string, b *ir.Node, w io.Writer, es *EncState) error {
	if err := writeIndent(w, es); err != nil {
		return err
	}
	open := applyColor(es, ir.BlockType, KeyColor, key) +
		" " + applyColor(es, ir.BlockType, SepColor, "{")
	if err := writeString(w, open+"\n"); err != nil {
		return err
	}
	es.depth++
	if err := encodeBlock(b, w, es); err != nil {
		es.depth--
		return err
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.BlockType, SepColor, "}")+"\n\n")
}

// writeRawLines re-emits a verbatim body line for line at the current
// indent, no terminators.
func writeRawLines(v *ir.Node, w io.Writer, es *EncState) error {
	for _, ln := range v.Lines {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.RawType, RawColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// blockPad is the column where sibling directive values start: the
// longest key plus four, so every value gets at least four spaces.
// The reserved raw key is skipped, its lines carry no key.
func blockPad(b *ir.Node) int {
	max := 0
	for _, k := range b.Keys {
		if k == ir.RawKey {
			continue
		}
		if len(k) > max {
			max = len(k)
		}
	}
	pad := max + 4
	if pad < 1 {
		pad = 1
	}
	return pad
}

func writeIndent(w io.Writer, es *EncState) error {
	return writeString(w, strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
