// Package encode serializes config trees to block-config text.
//
// # Usage
//
//	node, _ := parse.Parse(data)
//	err := encode.Encode(node, os.Stdout)
//
//	// with options
//	err = encode.Encode(node, os.Stdout,
//	    encode.Indent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
// Output is deterministic: sibling directive values share a column,
// blocks indent uniformly, raw bodies re-emit line for line.
//
// # Related Packages
//
//   - github.com/bconf-format/bconf/ir - tree representation
//   - github.com/bconf-format/bconf/parse - parse text to trees
package encode
