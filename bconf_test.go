package bconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bconf-format/bconf/ir"
)

const nginxish = `worker_processes 4;

events {
    worker_connections 1024;
}

http {
    log_format main
        '$remote_addr - $remote_user'
        '"$request" $status';
    upstream pool {
        ip_hash;
        server 10.0.0.1:80;
        server 10.0.0.2:80;
    }
    server {
        listen 80;
        location / {
            proxy_pass http://pool;
        }
        location /auth {
            access_by_lua_block {
                local token = ngx.var.http_authorization
                if token == nil then
                    return ngx.exit(401)
                end
            }
        }
    }
    server {
        listen 443;
    }
}
`

func TestLoadDumpRoundTrip(t *testing.T) {
	node, err := LoadString(nginxish)
	if err != nil {
		t.Fatal(err)
	}
	out := DumpString(node)
	again, err := LoadString(out)
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, out)
	}
	if !Equal(node, again) {
		t.Fatalf("round trip changed tree\n%s", Diff(node, again))
	}
	// a second cycle reproduces the first byte for byte
	if out2 := DumpString(again); out2 != out {
		t.Fatalf("second dump differs:\n%s", Diff(node, again))
	}
}

func TestLoadFileResolvesIncludes(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "conf.d"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"nginx.conf":    "http {\n    include conf.d/*.conf;\n}\n",
		"conf.d/a.conf": "gzip on;\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	node, err := LoadFile(filepath.Join(root, "nginx.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if v := node.GetPath(ir.FieldPath("http", "gzip")); v == nil || v.Scalar != "on" {
		t.Fatalf("gzip: %+v", v)
	}
}

func TestEditThenDump(t *testing.T) {
	node, err := LoadString("http {\n    server {\n        listen 80;\n    }\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	err = node.SetPath(ir.FieldPath("http", "server", "listen"), ir.FromScalar("8080"))
	if err != nil {
		t.Fatal(err)
	}
	out := DumpString(node)
	if !strings.Contains(out, "listen    8080;") {
		t.Fatalf("edit lost:\n%s", out)
	}
}

func TestDiff(t *testing.T) {
	a, err := LoadString("server {\n    listen 80;\n    gzip on;\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	b := a.Clone()
	if err := b.SetPath(ir.FieldPath("server", "listen"), ir.FromScalar("443")); err != nil {
		t.Fatal(err)
	}

	if d := Diff(a, a.Clone()); d != "" {
		t.Fatalf("diff of equal trees: %q", d)
	}
	d := Diff(a, b)
	if !strings.Contains(d, "- ") || !strings.Contains(d, "+ ") {
		t.Fatalf("diff missing markers:\n%s", d)
	}
	if !strings.Contains(d, "80") || !strings.Contains(d, "443") {
		t.Fatalf("diff missing values:\n%s", d)
	}
}
