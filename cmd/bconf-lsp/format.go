package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/bconf-format/bconf/encode"

	"go.lsp.dev/protocol"
)

// Formatting replaces the whole document with its canonical form.
// Documents that do not parse are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil || doc.err != nil {
		return nil, nil
	}
	opts := []encode.EncodeOption{}
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.Indent(int(params.Options.TabSize)))
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc.node, buf, opts...); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.text {
		return nil, nil
	}
	nLines := strings.Count(doc.text, "\n") + 1
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(nLines), Character: 0},
		},
		NewText: formatted,
	}}, nil
}
