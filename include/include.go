// Package include provides filesystem-backed resolvers for the
// parser's include directive.
package include

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bconf-format/bconf/parse"
)

// Dir resolves include patterns against the local filesystem.  A
// relative pattern resolves against the including document's
// directory when known, else against root.  Matches come back in
// lexical order so merge results are stable.
func Dir(root string) parse.Resolver {
	return &dirResolver{root: root}
}

type dirResolver struct {
	root string
}

func (r *dirResolver) Resolve(pattern, base string) ([]parse.Source, error) {
	p := pattern
	if !filepath.IsAbs(p) {
		switch {
		case base != "":
			p = filepath.Join(base, p)
		case r.root != "":
			p = filepath.Join(r.root, p)
		}
	}
	matches, err := filepath.Glob(p)
	if err != nil {
		return nil, err
	}
	srcs := make([]parse.Source, 0, len(matches))
	for _, m := range matches {
		d, err := os.ReadFile(m)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, parse.Source{Name: m, Data: d})
	}
	return srcs, nil
}

// FS resolves include patterns against an fs.FS, e.g. an embed.FS or
// fstest.MapFS.  Patterns and bases are slash-separated fs paths.
func FS(fsys fs.FS) parse.Resolver {
	return &fsResolver{fsys: fsys}
}

type fsResolver struct {
	fsys fs.FS
}

func (r *fsResolver) Resolve(pattern, base string) ([]parse.Source, error) {
	p := pattern
	if base != "" && base != "." {
		p = path.Join(base, p)
	}
	matches, err := fs.Glob(r.fsys, p)
	if err != nil {
		return nil, err
	}
	srcs := make([]parse.Source, 0, len(matches))
	for _, m := range matches {
		d, err := fs.ReadFile(r.fsys, m)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, parse.Source{Name: m, Data: d})
	}
	return srcs, nil
}
