// Package parse builds config trees from block-config text.
//
// # Usage
//
//	node, err := parse.Parse([]byte("listen 80;"))
//	if err != nil {
//	    return err
//	}
//
//	// with include resolution
//	node, err = parse.Parse(data,
//	    parse.WithResolver(include.Dir("/etc/app")),
//	    parse.WithBase("/etc/app"))
//
// The parser consumes the tokenizer's logical statements in one pass,
// assigning each directive and block to its nesting location and
// promoting repeated keys into ordered lists.
//
// # Related Packages
//
//   - github.com/bconf-format/bconf/ir - tree representation
//   - github.com/bconf-format/bconf/encode - serialize trees to text
//   - github.com/bconf-format/bconf/token - tokenization
package parse
