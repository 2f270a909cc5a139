package main

import (
	"context"
	"sync"

	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/parse"

	"go.lsp.dev/protocol"
)

type document struct {
	uri  string
	text string
	node *ir.Node
	err  error
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, text string) *document {
	doc := &document{uri: uri, text: text}
	doc.node, doc.err = parse.ParseString(text)
	ds.mu.Lock()
	ds.docs[uri] = doc
	ds.mu.Unlock()
	return doc
}

func (ds *documentStore) drop(uri string) {
	ds.mu.Lock()
	delete(ds.docs, uri)
	ds.mu.Unlock()
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync, the last change carries the whole document
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), text)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.drop(string(params.TextDocument.URI))
	return nil
}
