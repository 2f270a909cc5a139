package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting depth.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth starts emission at the given nesting depth, for rendering a
// subtree as it would appear inside its enclosing blocks.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
