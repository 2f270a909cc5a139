package parse

import "github.com/bconf-format/bconf/token"

// Source is one resolved include fragment.
type Source struct {
	Name string
	Data []byte
}

// Resolver locates the sources matched by an include pattern.  base
// is the directory of the including document, empty when unknown.
// Returning no sources and no error is a resolution event whose
// handling (error vs. skip) is the parser's StrictIncludes policy.
type Resolver interface {
	Resolve(pattern, base string) ([]Source, error)
}

type parseOpts struct {
	resolver  Resolver
	base      string
	strict    bool
	tokenOpts []token.Option
}

type ParseOption func(*parseOpts)

// WithResolver enables include resolution.  Without a resolver,
// include directives are kept as ordinary scalar directives.
func WithResolver(r Resolver) ParseOption {
	return func(o *parseOpts) { o.resolver = r }
}

// WithBase sets the base location handed to the resolver for
// relative include patterns, typically the document's directory.
func WithBase(dir string) ParseOption {
	return func(o *parseOpts) { o.base = dir }
}

// StrictIncludes makes an include pattern with zero matches a parse
// error instead of a silent no-op.
func StrictIncludes(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// WithTokenOptions forwards options to the tokenizer, e.g.
// token.RawSuffix.
func WithTokenOptions(topts ...token.Option) ParseOption {
	return func(o *parseOpts) { o.tokenOpts = append(o.tokenOpts, topts...) }
}
