package gomap

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/bconf-format/bconf/ir"

	"github.com/goccy/go-yaml"
)

// ToAny projects a tree into plain Go values: blocks become ordered
// maps (yaml.MapSlice), lists become []any, scalars become strings,
// raw bodies become []string.
func ToAny(n *ir.Node) any {
	switch n.Type {
	case ir.ScalarType:
		return n.Scalar
	case ir.RawType:
		return slices.Clone(n.Lines)
	case ir.ListType:
		elts := make([]any, len(n.Values))
		for i, v := range n.Values {
			elts[i] = ToAny(v)
		}
		return elts
	case ir.BlockType:
		ms := make(yaml.MapSlice, len(n.Keys))
		for i, k := range n.Keys {
			ms[i] = yaml.MapItem{Key: k, Value: ToAny(n.Values[i])}
		}
		return ms
	default:
		return nil
	}
}

// FromAny builds a tree from plain Go values.  Ordered maps keep key
// order; unordered maps get their keys sorted so the result is
// deterministic.  A string slice under the reserved raw key becomes a
// raw body.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.FromScalar(""), nil
	case string:
		return ir.FromScalar(x), nil
	case bool:
		return ir.FromScalar(strconv.FormatBool(x)), nil
	case int:
		return ir.FromScalar(strconv.Itoa(x)), nil
	case int64:
		return ir.FromScalar(strconv.FormatInt(x, 10)), nil
	case uint64:
		return ir.FromScalar(strconv.FormatUint(x, 10)), nil
	case float64:
		return ir.FromScalar(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case []string:
		return ir.FromLines(slices.Clone(x)), nil
	case []any:
		elts := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elts[i] = n
		}
		return ir.FromList(elts...), nil
	case yaml.MapSlice:
		b := ir.NewBlock()
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			child, err := fromBlockValue(key, item.Value)
			if err != nil {
				return nil, err
			}
			b.Put(key, child)
		}
		return b, nil
	case map[string]any:
		b := ir.NewBlock()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			child, err := fromBlockValue(k, x[k])
			if err != nil {
				return nil, err
			}
			b.Put(k, child)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrType, v)
	}
}

// fromBlockValue converts one block entry.  The YAML and JSON
// decoders hand back raw bodies as generic string lists, so under the
// reserved raw key those coerce back to a raw body.
func fromBlockValue(key string, v any) (*ir.Node, error) {
	if key == ir.RawKey {
		if lines, ok := stringLines(v); ok {
			return ir.FromLines(lines), nil
		}
	}
	return FromAny(v)
}

func stringLines(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return slices.Clone(x), true
	case []any:
		lines := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			lines[i] = s
		}
		return lines, true
	}
	return nil, false
}
