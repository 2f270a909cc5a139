// Package bconf reads and writes block-structured config text such as
// nginx configuration: semicolon-terminated directives, nested brace
// blocks, repeated keys, and verbatim code blocks.
//
// # Usage
//
//	node, err := bconf.LoadFile("/etc/nginx/nginx.conf")
//	if err != nil {
//	    return err
//	}
//	node.SetPath(ir.FieldPath("http", "server", "listen"), ir.FromScalar("8080"))
//	out := bconf.DumpString(node)
//
// # Related Packages
//
//   - github.com/bconf-format/bconf/ir - tree representation and paths
//   - github.com/bconf-format/bconf/parse - text to trees
//   - github.com/bconf-format/bconf/encode - trees to text
//   - github.com/bconf-format/bconf/include - include resolvers
//   - github.com/bconf-format/bconf/gomap - YAML/JSON projections
package bconf
