package bconf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bconf-format/bconf/encode"
	"github.com/bconf-format/bconf/include"
	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/parse"
)

// Load parses block-config text from r.
func Load(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// LoadString parses block-config text from a string.
func LoadString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// LoadFile parses the named file with include resolution rooted at
// the file's directory.  Options appended by the caller can override
// the resolver and base.
func LoadFile(name string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(name)
	pOpts := []parse.ParseOption{
		parse.WithResolver(include.Dir(dir)),
		parse.WithBase(dir),
	}
	return parse.Parse(d, append(pOpts, opts...)...)
}

// Dump writes node as block-config text.
func Dump(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// DumpString renders node as block-config text, panicking on nodes
// that cannot encode.
func DumpString(node *ir.Node) string {
	return encode.MustString(node)
}

// Equal reports whether two trees hold the same structure and values.
func Equal(a, b *ir.Node) bool {
	return ir.Equal(a, b)
}
