package ir

import "errors"

var (
	// ErrConflict reports a write whose target or an intermediate
	// segment holds a value of an incompatible kind.
	ErrConflict = errors.New("structural conflict")

	// ErrPath reports a malformed or out-of-range path.
	ErrPath = errors.New("bad path")
)
