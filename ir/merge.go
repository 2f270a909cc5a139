package ir

import "fmt"

// GetPath resolves p from y, returning nil when any segment is absent
// or addresses a node of the wrong shape.  It never modifies the tree.
func (y *Node) GetPath(p Path) *Node {
	cur := y
	for _, seg := range p {
		if cur == nil {
			return nil
		}
		if seg.IsIndex {
			if cur.Type != ListType || seg.Index < 0 || seg.Index >= len(cur.Values) {
				return nil
			}
			cur = cur.Values[seg.Index]
			continue
		}
		if cur.Type != BlockType {
			return nil
		}
		cur = cur.Get(seg.Key)
	}
	return cur
}

// SetPath stores v at p, creating intermediate blocks for absent key
// segments.  An intermediate segment that exists but is not a block
// (or, for an index segment, not a list) is a structural conflict.
func (y *Node) SetPath(p Path, v *Node) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrPath)
	}
	cur := y
	for _, seg := range p[:len(p)-1] {
		if seg.IsIndex {
			if cur.Type != ListType {
				return fmt.Errorf("%w: expected list at %s, got %s", ErrConflict, p, cur.Type)
			}
			if seg.Index < 0 || seg.Index >= len(cur.Values) {
				return fmt.Errorf("%w: index %d out of range (len %d)", ErrPath, seg.Index, len(cur.Values))
			}
			cur = cur.Values[seg.Index]
			continue
		}
		if cur.Type != BlockType {
			return fmt.Errorf("%w: expected block at %s, got %s", ErrConflict, p, cur.Type)
		}
		child := cur.Get(seg.Key)
		if child == nil {
			child = NewBlock()
			cur.Put(seg.Key, child)
		}
		cur = child
	}
	last := p[len(p)-1]
	if last.IsIndex {
		if cur.Type != ListType {
			return fmt.Errorf("%w: expected list at %s, got %s", ErrConflict, p, cur.Type)
		}
		if last.Index < 0 || last.Index >= len(cur.Values) {
			return fmt.Errorf("%w: index %d out of range (len %d)", ErrPath, last.Index, len(cur.Values))
		}
		cur.Values[last.Index] = v
		return nil
	}
	if cur.Type != BlockType {
		return fmt.Errorf("%w: expected block at %s, got %s", ErrConflict, p, cur.Type)
	}
	cur.Put(last.Key, v)
	return nil
}

// Append writes v at p with array promotion: an absent target is set
// directly, a second occurrence promotes the existing value to a
// two-element list, and later occurrences append.  An incoming list
// (an include fragment whose key was already repeated) is
// concatenated element by element.  The returned bool reports whether
// the target now holds a list.
func (y *Node) Append(p Path, v *Node) (bool, error) {
	existing := y.GetPath(p)
	if existing == nil {
		if err := y.SetPath(p, v); err != nil {
			return false, err
		}
		return false, nil
	}
	if existing.Type != ListType {
		elts, err := promote(existing, v, p)
		if err != nil {
			return false, err
		}
		if err := y.SetPath(p, FromList(elts...)); err != nil {
			return false, err
		}
		return true, nil
	}
	if len(existing.Values) == 0 {
		if v.Type == ListType {
			existing.Values = append(existing.Values, v.Values...)
		} else {
			existing.Values = append(existing.Values, v)
		}
		return true, nil
	}
	elts, err := promote(existing.Values[0], v, p)
	if err != nil {
		return false, err
	}
	existing.Values = append(existing.Values, elts[1:]...)
	return true, nil
}

// promote pairs old with the incoming value(s), flattening an incoming
// list and rejecting mixed scalar/block promotions.
func promote(old, v *Node, p Path) ([]*Node, error) {
	incoming := []*Node{v}
	if v.Type == ListType {
		incoming = v.Values
	}
	for _, in := range incoming {
		if in.Type != old.Type {
			return nil, fmt.Errorf("%w: key %s used as both %s and %s",
				ErrConflict, p, old.Type, in.Type)
		}
	}
	return append([]*Node{old}, incoming...), nil
}
