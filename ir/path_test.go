package ir

import "testing"

type pathRoundTrip struct {
	keys []string
	enc  string
}

var pathRoundTrips = []pathRoundTrip{
	{
		keys: []string{"http", "server", "listen"},
		enc:  "$.http.server.listen",
	},
	{
		keys: []string{"server"},
		enc:  "$.server",
	},
	{
		keys: []string{"upstream backend"},
		enc:  "$.'upstream backend'",
	},
	{
		keys: []string{"geo $remote_addr $ip"},
		enc:  "$.'geo $remote_addr $ip'",
	},
	{
		keys: []string{"http", "if ($host = 'a.b.c')"},
		enc:  `$.http.'if ($host = \'a.b.c\')'`,
	},
	{
		keys: []string{"location /a.b/c"},
		enc:  "$.'location /a.b/c'",
	},
	{
		keys: []string{"10.0.0.0/8"},
		enc:  "$.'10.0.0.0/8'",
	},
	{
		keys: []string{`back\slash`, `trailing\`},
		enc:  `$.'back\\slash'.'trailing\\'`,
	},
	{
		keys: []string{""},
		enc:  "$.''",
	},
}

func TestPathRoundTrip(t *testing.T) {
	for i := range pathRoundTrips {
		pt := &pathRoundTrips[i]
		p := FieldPath(pt.keys...)
		enc := p.String()
		if enc != pt.enc {
			t.Errorf("encode %v: got %q want %q", pt.keys, enc, pt.enc)
			continue
		}
		dec, err := ParsePath(enc)
		if err != nil {
			t.Errorf("decode %q: %v", enc, err)
			continue
		}
		keys := dec.Keys()
		if len(keys) != len(pt.keys) {
			t.Errorf("decode %q: got %v want %v", enc, keys, pt.keys)
			continue
		}
		for j := range keys {
			if keys[j] != pt.keys[j] {
				t.Errorf("decode %q: got %v want %v", enc, keys, pt.keys)
				break
			}
		}
	}
}

func TestPathIndexSegments(t *testing.T) {
	p := Path{Field("http"), Field("server"), Index(1), Field("listen")}
	enc := p.String()
	if enc != "$.http.server[1].listen" {
		t.Errorf("got %q", enc)
	}
	dec, err := ParsePath(enc)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 4 || !dec[2].IsIndex || dec[2].Index != 1 {
		t.Errorf("got %#v", dec)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		"x.y",
		"$.",
		"$['",
		"$[1",
		"$[x]",
		"$.'unterminated",
		"$x",
	} {
		if _, err := ParsePath(bad); err == nil {
			t.Errorf("parse %q: expected error", bad)
		}
	}
}
