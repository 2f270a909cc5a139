package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bconf-format/bconf/ir"
)

func block(kv ...any) *ir.Node {
	b := ir.NewBlock()
	for i := 0; i < len(kv); i += 2 {
		b.Put(kv[i].(string), kv[i+1].(*ir.Node))
	}
	return b
}

type encodeTest struct {
	name string
	node *ir.Node
	opts []EncodeOption
	want []string
}

func TestEncode(t *testing.T) {
	tts := []encodeTest{
		{
			name: "directive value starts four past the key",
			node: block("listen", ir.FromScalar("80")),
			want: []string{
				"listen    80;",
				"",
			},
		},
		{
			name: "sibling values share a column",
			node: block(
				"worker_processes", ir.FromScalar("4"),
				"pid", ir.FromScalar("/run/app.pid"),
			),
			want: []string{
				"worker_processes    4;",
				"pid                 /run/app.pid;",
				"",
			},
		},
		{
			name: "valueless directive",
			node: block("ip_hash", ir.FromScalar("")),
			want: []string{
				"ip_hash;",
				"",
			},
		},
		{
			name: "block indents four spaces",
			node: block("events", block("worker_connections", ir.FromScalar("1024"))),
			want: []string{
				"events {",
				"    worker_connections    1024;",
				"}",
				"",
				"",
			},
		},
		{
			name: "empty block",
			node: block("server", block()),
			want: []string{
				"server {",
				"}",
				"",
				"",
			},
		},
		{
			name: "list of scalars emits one line per element",
			node: block("upstream pool", block("server", ir.FromList(
				ir.FromScalar("10.0.0.1:80"),
				ir.FromScalar("10.0.0.2:80"),
			))),
			want: []string{
				"upstream pool {",
				"    server    10.0.0.1:80;",
				"    server    10.0.0.2:80;",
				"}",
				"",
				"",
			},
		},
		{
			name: "list of blocks emits each in full",
			node: block("server", ir.FromList(
				block("listen", ir.FromScalar("80")),
				block("listen", ir.FromScalar("443")),
			)),
			want: []string{
				"server {",
				"    listen    80;",
				"}",
				"",
				"server {",
				"    listen    443;",
				"}",
				"",
				"",
			},
		},
		{
			name: "raw body emits verbatim at current indent",
			node: block("content_by_lua_block", block(ir.RawKey, ir.FromLines([]string{
				"local v = ngx.var.request_uri",
				"return ngx.exit(403)",
			}))),
			want: []string{
				"content_by_lua_block {",
				"    local v = ngx.var.request_uri",
				"    return ngx.exit(403)",
				"}",
				"",
				"",
			},
		},
		{
			name: "raw key does not widen the pad",
			node: block("set_by_lua_block", block(
				ir.RawKey, ir.FromLines([]string{"return 1"}),
				"ab", ir.FromScalar("x"),
			)),
			want: []string{
				"set_by_lua_block {",
				"    return 1",
				"    ab    x;",
				"}",
				"",
				"",
			},
		},
		{
			name: "custom indent",
			node: block("events", block("a", ir.FromScalar("1"))),
			opts: []EncodeOption{Indent(2)},
			want: []string{
				"events {",
				"  a    1;",
				"}",
				"",
				"",
			},
		},
		{
			name: "depth offsets the whole emission",
			node: block("a", ir.FromScalar("1")),
			opts: []EncodeOption{Depth(1)},
			want: []string{
				"    a    1;",
				"",
			},
		},
	}
	for i := range tts {
		tt := &tts[i]
		buf := bytes.NewBuffer(nil)
		if err := Encode(tt.node, buf, tt.opts...); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		want := strings.Join(tt.want, "\n")
		if got := buf.String(); got != want {
			t.Errorf("%s:\ngot:\n%q\nwant:\n%q", tt.name, got, want)
		}
	}
}

func TestEncodeNonBlockRoot(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromScalar("80"), buf); err == nil {
		t.Fatal("expected error for scalar root")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	node := block("http", block(
		"server", ir.FromList(block("listen", ir.FromScalar("80")), block()),
		"gzip", ir.FromScalar("on"),
	))
	a, b := MustString(node), MustString(node)
	if a != b {
		t.Fatalf("two encodings differ:\n%q\n%q", a, b)
	}
}

func TestEncodeColorsCoverTypes(t *testing.T) {
	c := NewColors()
	for _, typ := range ir.Types() {
		if c.Get(typ, SepColor) == nil {
			t.Errorf("no separator color for %s", typ)
		}
	}
	plain := "a"
	if got := c.Color(ir.ScalarType, KeyColor, plain); got == "" {
		t.Errorf("coloring %q produced empty string", plain)
	}
}
