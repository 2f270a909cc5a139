package token

// DefaultRawSuffix marks blocks whose bodies are embedded foreign
// code: they are captured verbatim rather than tokenized.
const DefaultRawSuffix = "_by_lua_block"

type tokenOpts struct {
	rawSuffix string
}

type Option func(*tokenOpts)

// RawSuffix overrides the block-key suffix that switches the
// tokenizer into verbatim capture.  An empty suffix disables raw
// blocks entirely.
func RawSuffix(s string) Option {
	return func(o *tokenOpts) { o.rawSuffix = s }
}
