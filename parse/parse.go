package parse

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/bconf-format/bconf/debug"
	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/token"
)

// IncludeKey is the directive keyword that pulls in other sources.
const IncludeKey = "include"

// Parse builds a tree from block-config text.  The returned root is
// always a block; its keys appear in source order, with repeated
// sibling keys promoted to lists.  Parse halts on the first input it
// cannot interpret.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	stmts, err := token.Tokenize(nil, d, pOpts.tokenOpts...)
	if err != nil {
		return nil, err
	}
	root := ir.NewBlock()
	var (
		path   ir.Path
		pushed []bool
	)
	for i := range stmts {
		st := &stmts[i]
		if debug.Parse() {
			debug.Logf("parse %s %q at %s (line %d)", st.Type, st.Key, path, st.Line)
		}
		switch st.Type {
		case token.SOpen:
			target := extend(path, ir.Field(st.Key))
			promoted, err := root.Append(target, ir.NewBlock())
			if err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, st.Line)
			}
			path = target
			if promoted {
				lst := root.GetPath(target)
				path = extend(path, ir.Index(len(lst.Values)-1))
			}
			pushed = append(pushed, promoted)

		case token.SDirective:
			if st.Key == IncludeKey && pOpts.resolver != nil {
				if err := mergeInclude(root, path, st, pOpts); err != nil {
					return nil, err
				}
				continue
			}
			if _, err := root.Append(extend(path, ir.Field(st.Key)), ir.FromScalar(st.Args)); err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, st.Line)
			}

		case token.SRaw:
			if _, err := root.Append(extend(path, ir.Field(ir.RawKey)), ir.FromLines(st.Lines)); err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, st.Line)
			}

		case token.SClose:
			if len(path) == 0 {
				return nil, fmt.Errorf("%w: unexpected '}' on line %d", token.ErrMalformed, st.Line)
			}
			n := 1
			if pushed[len(pushed)-1] {
				n = 2
			}
			path = path[:len(path)-n]
			pushed = pushed[:len(pushed)-1]
		}
	}
	if len(path) != 0 {
		return nil, fmt.Errorf("%w: block %s not closed at end of input", token.ErrMalformed, path)
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// mergeInclude resolves an include pattern and merges every resolved
// fragment's top-level keys at the current path, each fragment being
// a full recursive parse.  Repeated keys merge through the same
// promotion rule as ordinary statements.
func mergeInclude(root *ir.Node, path ir.Path, st *token.Stmt, o *parseOpts) error {
	srcs, err := o.resolver.Resolve(st.Args, o.base)
	if err != nil {
		return fmt.Errorf("%w: include %q (line %d): %w", ErrParse, st.Args, st.Line, err)
	}
	if len(srcs) == 0 {
		if o.strict {
			return fmt.Errorf("%w: %q matched no sources (line %d)", ErrUnresolvedInclude, st.Args, st.Line)
		}
		if debug.Includes() {
			debug.Logf("include %q matched no sources (line %d)", st.Args, st.Line)
		}
		return nil
	}
	for _, src := range srcs {
		if debug.Includes() {
			debug.Logf("include %q -> %s (%d bytes)", st.Args, src.Name, len(src.Data))
		}
		subOpts := []ParseOption{
			WithResolver(o.resolver),
			StrictIncludes(o.strict),
			WithTokenOptions(o.tokenOpts...),
			WithBase(o.base),
		}
		if src.Name != "" {
			subOpts = append(subOpts, WithBase(filepath.Dir(src.Name)))
		}
		frag, err := Parse(src.Data, subOpts...)
		if err != nil {
			return fmt.Errorf("%w: include %s: %w", ErrParse, src.Name, err)
		}
		for i, k := range frag.Keys {
			if _, err := root.Append(extend(path, ir.Field(k)), frag.Values[i]); err != nil {
				return fmt.Errorf("%w: include %s (line %d)", err, src.Name, st.Line)
			}
		}
	}
	return nil
}

// extend clones before appending: path segments are shared across
// statements and must never alias.
func extend(p ir.Path, seg ir.Seg) ir.Path {
	return append(slices.Clone(p), seg)
}
