package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bconf-format/bconf/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	stmts, err := token.Tokenize(nil, []byte(doc.text))
	if err != nil {
		return nil, nil
	}
	line := int(params.Position.Line) + 1
	st := stmtAtLine(stmts, line)
	if st == nil {
		return nil, nil
	}
	hoverText := buildHoverText(st)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// stmtAtLine picks the last statement starting on or before line, so
// hovering inside a continuation or raw body reports its statement.
func stmtAtLine(stmts []token.Stmt, line int) *token.Stmt {
	var best *token.Stmt
	for i := range stmts {
		st := &stmts[i]
		if st.Line > line {
			break
		}
		if st.Type == token.SClose {
			continue
		}
		best = st
	}
	return best
}

func buildHoverText(st *token.Stmt) string {
	var parts []string
	switch st.Type {
	case token.SDirective:
		parts = append(parts, fmt.Sprintf("**Directive:** `%s`", st.Key))
		if st.Args != "" {
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", st.Args))
		}
	case token.SOpen:
		parts = append(parts, fmt.Sprintf("**Block:** `%s`", st.Key))
	case token.SRaw:
		parts = append(parts, fmt.Sprintf("**Verbatim body:** %d lines", len(st.Lines)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n")
}
