package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Seg is one step of a Path: either a block key or a list index.
type Seg struct {
	Key     string
	Index   int
	IsIndex bool
}

func Field(key string) Seg {
	return Seg{Key: key}
}

func Index(i int) Seg {
	return Seg{Index: i, IsIndex: true}
}

// Path addresses a location in a tree from its root.  Keys may contain
// any characters, including the separator; String and ParsePath are
// inverses for every key sequence.
type Path []Seg

// quoteChars force a key into single-quoted form so that the literal
// characters cannot collide with path syntax.
const quoteChars = `'.*$[]\`

func quoteKey(f string) string {
	if f != "" && !strings.ContainsAny(f, quoteChars) && !strings.ContainsAny(f, " \t") {
		return f
	}
	s := strings.Replace(f, `\`, `\\`, -1)
	s = strings.Replace(s, "'", `\'`, -1)
	return "'" + s + "'"
}

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, seg := range p {
		if seg.IsIndex {
			fmt.Fprintf(buf, "[%d]", seg.Index)
			continue
		}
		buf.WriteString("." + quoteKey(seg.Key))
	}
	return buf.String()
}

// Keys returns the key segments of p, dropping indices.
func (p Path) Keys() []string {
	res := make([]string, 0, len(p))
	for _, seg := range p {
		if !seg.IsIndex {
			res = append(res, seg.Key)
		}
	}
	return res
}

// FieldPath builds an index-free path from keys.
func FieldPath(keys ...string) Path {
	p := make(Path, len(keys))
	for i, k := range keys {
		p[i] = Field(k)
	}
	return p
}

func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, s)
	}
	var p Path
	frag := s[1:]
	for len(frag) > 0 {
		switch frag[0] {
		case '.':
			key, rest, err := parseKey(frag[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPath, err)
			}
			p = append(p, Field(key))
			frag = rest
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']'", ErrPath)
			}
			u64, err := strconv.ParseUint(frag[1:i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPath, err)
			}
			p = append(p, Index(int(u64)))
			frag = frag[i+2:]
		default:
			return nil, fmt.Errorf("%w: expected '.' or '[' at %q", ErrPath, frag)
		}
	}
	return p, nil
}

func parseKey(frag string) (key, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected key at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			escaped = false
			res = append(res, c)
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of path scanning for \"'\"")
}
