package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/bconf-format/bconf/ir"
	"github.com/bconf-format/bconf/parse"

	"github.com/goccy/go-yaml"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestToAny(t *testing.T) {
	n := mustParse(t, strings.Join([]string{
		"worker_processes 4;",
		"upstream pool {",
		"    server 10.0.0.1:80;",
		"    server 10.0.0.2:80;",
		"}",
		"content_by_lua_block {",
		"    return 1",
		"}",
	}, "\n"))
	v := ToAny(n)
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		t.Fatalf("got %T, want yaml.MapSlice", v)
	}
	if len(ms) != 3 {
		t.Fatalf("got %d entries", len(ms))
	}
	if ms[0].Key != "worker_processes" || ms[0].Value != "4" {
		t.Errorf("entry 0: %+v", ms[0])
	}
	pool, ok := ms[1].Value.(yaml.MapSlice)
	if !ok {
		t.Fatalf("pool: %T", ms[1].Value)
	}
	servers, ok := pool[0].Value.([]any)
	if !ok || len(servers) != 2 || servers[0] != "10.0.0.1:80" {
		t.Fatalf("servers: %+v", pool[0].Value)
	}
	raw, ok := ms[2].Value.(yaml.MapSlice)
	if !ok {
		t.Fatalf("raw holder: %T", ms[2].Value)
	}
	lines, ok := raw[0].Value.([]string)
	if !ok || raw[0].Key != ir.RawKey || len(lines) != 1 || lines[0] != "return 1" {
		t.Fatalf("raw body: %+v", raw[0])
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	for _, in := range []string{
		"listen 80;\n",
		"server {\n    listen 80;\n}\n",
		"a 1;\na 2;\n",
		"server {\n}\nserver {\n    listen 443;\n}\n",
		"content_by_lua_block {\n    return ngx.exit(403)\n}\n",
	} {
		n := mustParse(t, in)
		back, err := FromAny(ToAny(n))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !ir.Equal(n, back) {
			t.Errorf("%q: round trip changed tree\ngot %+v\nwant %+v", in, back, n)
		}
	}
}

func TestFromAnyUnorderedMapSortsKeys(t *testing.T) {
	n, err := FromAny(map[string]any{"b": "2", "a": "1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Keys) != 2 || n.Keys[0] != "a" || n.Keys[1] != "b" {
		t.Fatalf("keys: %v", n.Keys)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	if !errors.Is(err, ErrType) {
		t.Fatalf("got %v, want ErrType", err)
	}
}

func TestMarshalYAMLOrder(t *testing.T) {
	n := mustParse(t, "zz 1;\naa 2;\n")
	d, err := MarshalYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	s := string(d)
	if !strings.Contains(s, "zz") || strings.Index(s, "zz") > strings.Index(s, "aa") {
		t.Fatalf("order lost: %q", s)
	}
}

func TestMarshalJSON(t *testing.T) {
	n := mustParse(t, "server {\n    listen 80;\n}\n")
	d, err := MarshalJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	// normalize insignificant whitespace before comparing
	got := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, string(d))
	want := `{"server":{"listen":"80"}}`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUnmarshalYAMLRoundTrip(t *testing.T) {
	n := mustParse(t, "http {\n    gzip on;\n    server {\n        listen 80;\n    }\n}\n")
	d, err := MarshalYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Fatalf("round trip changed tree\nyaml:\n%s\ngot %+v", d, back)
	}
}

func TestUnmarshalJSONScalars(t *testing.T) {
	n, err := UnmarshalJSON([]byte(`{"workers":4,"gzip":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if v := n.Get("workers"); v == nil || v.Scalar != "4" {
		t.Fatalf("workers: %+v", v)
	}
	if v := n.Get("gzip"); v == nil || v.Scalar != "true" {
		t.Fatalf("gzip: %+v", v)
	}
}
