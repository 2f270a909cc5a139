package token

// StmtType classifies a logical statement.
type StmtType int

const (
	SDirective StmtType = iota
	SOpen
	SClose
	SRaw
)

func (t StmtType) String() string {
	s, ok := map[StmtType]string{
		SDirective: "Directive",
		SOpen:      "Open",
		SClose:     "Close",
		SRaw:       "Raw",
	}[t]
	if ok {
		return s
	}
	return "<unknown statement type>"
}

// Stmt is one logical statement: a fully reassembled directive or
// block boundary, after continuation joining and
// multi-statement-per-line splitting.
type Stmt struct {
	Type StmtType

	// Key is the directive name or block header.
	Key string

	// Args is the directive argument text, semicolon-stripped.  It is
	// empty for non-directives and for bare directives.
	Args string

	// Lines is the verbatim body of a raw block.
	Lines []string

	// Line is the 1-based source line on which the statement starts.
	Line int
}
