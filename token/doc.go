// Package token turns raw block-config text into logical statements.
//
// A logical statement is a directive terminated by ';', a block
// opening ("key {"), a block close ("}"), or the captured verbatim
// body of a raw block.  The tokenizer normalizes ragged physical
// lines: several statements on one line are split apart, and a
// statement spanning several lines is reassembled.
package token
