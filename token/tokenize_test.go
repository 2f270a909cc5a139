package token

import (
	"errors"
	"strings"
	"testing"
)

type tokenizeTest struct {
	name string
	in   string
	want []Stmt
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			name: "directive",
			in:   "listen 80;\n",
			want: []Stmt{
				{Type: SDirective, Key: "listen", Args: "80", Line: 1},
			},
		},
		{
			name: "bare directive",
			in:   "ip_hash;",
			want: []Stmt{
				{Type: SDirective, Key: "ip_hash", Line: 1},
			},
		},
		{
			name: "argument spacing preserved on one line",
			in:   `log_format main '$remote_addr  -  $request';`,
			want: []Stmt{
				{Type: SDirective, Key: "log_format", Args: `main '$remote_addr  -  $request'`, Line: 1},
			},
		},
		{
			name: "block",
			in:   "events {\n    worker_connections 1024;\n}\n",
			want: []Stmt{
				{Type: SOpen, Key: "events", Line: 1},
				{Type: SDirective, Key: "worker_connections", Args: "1024", Line: 2},
				{Type: SClose, Line: 3},
			},
		},
		{
			name: "several statements packed on one line",
			in:   "a 1; b 2; c { d 3; } e 4;",
			want: []Stmt{
				{Type: SDirective, Key: "a", Args: "1", Line: 1},
				{Type: SDirective, Key: "b", Args: "2", Line: 1},
				{Type: SOpen, Key: "c", Line: 1},
				{Type: SDirective, Key: "d", Args: "3", Line: 1},
				{Type: SClose, Line: 1},
				{Type: SDirective, Key: "e", Args: "4", Line: 1},
			},
		},
		{
			name: "no space around braces",
			in:   "server{listen 80;}",
			want: []Stmt{
				{Type: SOpen, Key: "server", Line: 1},
				{Type: SDirective, Key: "listen", Args: "80", Line: 1},
				{Type: SClose, Line: 1},
			},
		},
		{
			name: "continuation joined with single space",
			in:   "log_format main\n    '$remote_addr'\n    '$request';\n",
			want: []Stmt{
				{Type: SDirective, Key: "log_format", Args: "main '$remote_addr' '$request'", Line: 1},
			},
		},
		{
			name: "continuation whitespace collapsed",
			in:   "a   one\n   two\t three;\n",
			want: []Stmt{
				{Type: SDirective, Key: "a", Args: "one two three", Line: 1},
			},
		},
		{
			name: "block header spanning lines",
			in:   "location ~\n    /images/ {\n}\n",
			want: []Stmt{
				{Type: SOpen, Key: "location ~ /images/", Line: 1},
				{Type: SClose, Line: 3},
			},
		},
		{
			name: "comment line and trailing comment",
			in:   "# a comment\nlisten 80; # trailing\n   # indented comment\n",
			want: []Stmt{
				{Type: SDirective, Key: "listen", Args: "80", Line: 2},
			},
		},
		{
			name: "stray terminator",
			in:   ";;\na 1;",
			want: []Stmt{
				{Type: SDirective, Key: "a", Args: "1", Line: 2},
			},
		},
		{
			name: "key with spaces and dots",
			in:   "upstream pool.a {\n    server 10.0.0.1:80;\n}\n",
			want: []Stmt{
				{Type: SOpen, Key: "upstream pool.a", Line: 1},
				{Type: SDirective, Key: "server", Args: "10.0.0.1:80", Line: 2},
				{Type: SClose, Line: 3},
			},
		},
	}
	for i := range tts {
		tt := &tts[i]
		got, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		assertStmts(t, tt.name, got, tt.want)
	}
}

func TestTokenizeRawBlock(t *testing.T) {
	in := strings.Join([]string{
		"content_by_lua_block {",
		"    local v = ngx.var.request_uri; -- not a config comment: #",
		"    if v == nil then",
		"        return ngx.exit(403)",
		"    end",
		"}",
		"a 1;",
	}, "\n")
	got, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Stmt{
		{Type: SOpen, Key: "content_by_lua_block", Line: 1},
		{Type: SRaw, Line: 1, Lines: []string{
			"local v = ngx.var.request_uri; -- not a config comment: #",
			"if v == nil then",
			"return ngx.exit(403)",
			"end",
		}},
		{Type: SClose, Line: 6},
		{Type: SDirective, Key: "a", Args: "1", Line: 7},
	}
	assertStmts(t, "raw block", got, want)
}

func TestTokenizeRawInline(t *testing.T) {
	got, err := Tokenize(nil, []byte("init_by_lua_block { require('x') }\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Stmt{
		{Type: SOpen, Key: "init_by_lua_block", Line: 1},
		{Type: SRaw, Line: 1, Lines: []string{"require('x')"}},
		{Type: SClose, Line: 1},
	}
	assertStmts(t, "raw inline", got, want)
}

func TestTokenizeRawSuffixOption(t *testing.T) {
	in := "code_verbatim {\n    anything # here;\n}\n"
	got, err := Tokenize(nil, []byte(in), RawSuffix("_verbatim"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Stmt{
		{Type: SOpen, Key: "code_verbatim", Line: 1},
		{Type: SRaw, Line: 1, Lines: []string{"anything # here;"}},
		{Type: SClose, Line: 3},
	}
	assertStmts(t, "raw suffix option", got, want)
}

// Comment stripping cuts at the first '#' even inside quotes.  The
// truncated statement loses its terminator and is swallowed into a
// continuation with whatever follows.  This is intentional, known
// behavior of the format, preserved rather than special-cased.
func TestTokenizeQuotedHashLimitation(t *testing.T) {
	_, err := Tokenize(nil, []byte(`add_header X-Frag "a#b";`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v, want ErrMalformed (truncation leaves no terminator)", err)
	}

	got, err := Tokenize(nil, []byte("log_format x \"a#b\";\nnext 1;\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Stmt{
		{Type: SDirective, Key: "log_format", Args: `x "a next 1`, Line: 1},
	}
	assertStmts(t, "quoted hash", got, want)
}

func TestTokenizeErrors(t *testing.T) {
	for _, in := range []string{
		"a 1",                        // no terminator
		"content_by_lua_block {\nx", // raw block left open
		"a 1 }",                      // statement before close
		"{\n}",                       // unnamed block
	} {
		_, err := Tokenize(nil, []byte(in))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: got %v, want ErrMalformed", in, err)
		}
	}
}

func assertStmts(t *testing.T, name string, got, want []Stmt) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %d statements, want %d\ngot: %+v", name, len(got), len(want), got)
		return
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Type != w.Type || g.Key != w.Key || g.Args != w.Args || g.Line != w.Line {
			t.Errorf("%s: statement %d: got %+v want %+v", name, i, g, w)
			continue
		}
		if len(g.Lines) != len(w.Lines) {
			t.Errorf("%s: statement %d: got %d raw lines, want %d", name, i, len(g.Lines), len(w.Lines))
			continue
		}
		for j := range w.Lines {
			if g.Lines[j] != w.Lines[j] {
				t.Errorf("%s: statement %d line %d: got %q want %q", name, i, j, g.Lines[j], w.Lines[j])
			}
		}
	}
}
