package gomap

import (
	"github.com/bconf-format/bconf/ir"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders a tree as YAML with block key order preserved.
func MarshalYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(n))
}

// MarshalJSON renders a tree as JSON, routed through the YAML
// projection so key order matches MarshalYAML.
func MarshalJSON(n *ir.Node) ([]byte, error) {
	y, err := yaml.Marshal(ToAny(n))
	if err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(y)
}

// UnmarshalYAML builds a tree from YAML, decoding objects as ordered
// maps so key order survives.
func UnmarshalYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// UnmarshalJSON builds a tree from JSON.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return nil, err
	}
	return UnmarshalYAML(y)
}
