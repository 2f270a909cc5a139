package ir

import "slices"

// RawKey is the reserved block key holding the verbatim body of a
// raw block.
const RawKey = "_raw"

// Node is one value in a config tree.  Exactly one variant applies,
// selected by Type:
//
//   - ScalarType: Scalar holds the directive's argument text.
//   - BlockType: Keys/Values hold the ordered children; keys are unique.
//   - ListType: Values holds the elements of a repeated key.
//   - RawType: Lines holds the verbatim body of a raw block.
type Node struct {
	Type   Type
	Keys   []string
	Values []*Node
	Scalar string
	Lines  []string
}

func FromScalar(v string) *Node {
	return &Node{Type: ScalarType, Scalar: v}
}

func NewBlock() *Node {
	return &Node{Type: BlockType}
}

func FromList(elts ...*Node) *Node {
	return &Node{Type: ListType, Values: elts}
}

func FromLines(lines []string) *Node {
	return &Node{Type: RawType, Lines: lines}
}

// Get returns the child stored under key in a block, or nil.
func (y *Node) Get(key string) *Node {
	if y.Type != BlockType {
		return nil
	}
	for i, k := range y.Keys {
		if k == key {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) keyIndex(key string) int {
	for i, k := range y.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Put stores child under key in a block, replacing any existing value
// at that key and preserving its position.
func (y *Node) Put(key string, child *Node) {
	if i := y.keyIndex(key); i != -1 {
		y.Values[i] = child
		return
	}
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, child)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		Scalar: y.Scalar,
		Keys:   slices.Clone(y.Keys),
		Lines:  slices.Clone(y.Lines),
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ScalarType:
		return a.Scalar == b.Scalar
	case RawType:
		return slices.Equal(a.Lines, b.Lines)
	case ListType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case BlockType:
		if !slices.Equal(a.Keys, b.Keys) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Walk visits every node reachable from y in depth-first document
// order, passing the path from y.  Returning an error stops the walk.
func (y *Node) Walk(f func(p Path, n *Node) error) error {
	return y.walk(nil, f)
}

func (y *Node) walk(p Path, f func(p Path, n *Node) error) error {
	if err := f(p, y); err != nil {
		return err
	}
	switch y.Type {
	case BlockType:
		for i, k := range y.Keys {
			if err := y.Values[i].walk(append(slices.Clone(p), Field(k)), f); err != nil {
				return err
			}
		}
	case ListType:
		for i, v := range y.Values {
			if err := v.walk(append(slices.Clone(p), Index(i)), f); err != nil {
				return err
			}
		}
	}
	return nil
}
