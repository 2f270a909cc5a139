package parse

import (
	"errors"

	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/token"
)

var (
	ErrParse = errors.New("parse error")

	// ErrUnresolvedInclude reports an include pattern that matched no
	// sources; raised only under StrictIncludes.
	ErrUnresolvedInclude = errors.New("unresolved include")

	// re-exported so callers need not import the leaf packages
	ErrMalformed = token.ErrMalformed
	ErrConflict  = ir.ErrConflict
)
