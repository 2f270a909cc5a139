package main

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"
)

var lineRe = regexp.MustCompile(`line (\d+)`)

// errLine pulls the 1-based line number out of a parse error message,
// 1 when none is present.
func errLine(err error) int {
	m := lineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 1
	}
	n, cerr := strconv.Atoi(m[1])
	if cerr != nil || n < 1 {
		return 1
	}
	return n
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	diags := []protocol.Diagnostic{}
	if doc.err != nil {
		line := uint32(errLine(doc.err) - 1)
		endCol := uint32(0)
		if lines := strings.Split(doc.text, "\n"); int(line) < len(lines) {
			endCol = uint32(len(lines[line]))
		}
		diags = append(diags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line, Character: endCol},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  doc.err.Error(),
		})
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diags,
		})
}
