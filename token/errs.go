package token

import "errors"

var (
	// ErrMalformed reports input that cannot be tokenized: a statement
	// with no terminator at end of input, a raw block left open, or a
	// close brace preceded by an unterminated statement.
	ErrMalformed = errors.New("malformed input")
)
