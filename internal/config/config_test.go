package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	src := `
import: example.com/glenum
apis:
  - name: gl
    prefix: GL_
    tables: tables/gl
    output: out/gl
  - name: egl
    prefix: EGL_
    tables: tables/egl
    output: egl
    package: eglenum
`
	cfg, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Import:    "example.com/glenum",
		NamesTag:  "glenum_nonames",
		RangesTag: "glenum_noranges",
		APIs: []API{
			{Name: "gl", Prefix: "GL_", Tables: "tables/gl", Output: "out/gl", Package: "gl"},
			{Name: "egl", Prefix: "EGL_", Tables: "tables/egl", Output: "egl", Package: "eglenum"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	a, ok := cfg.Lookup("egl")
	if !ok || a.Package != "eglenum" {
		t.Errorf("Lookup(egl) = %+v, %v", a, ok)
	}
	if _, ok := cfg.Lookup("vk"); ok {
		t.Error("Lookup(vk) should fail")
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"yaml", "apis: [", "decode"},
		{"import", "apis: [{name: gl, tables: t, output: o}]", "missing import"},
		{"apis", "import: x", "no apis"},
		{"name", "import: x\napis: [{tables: t, output: o}]", "missing name"},
		{"twice", "import: x\napis: [{name: gl, tables: t, output: o}, {name: gl, tables: t, output: o}]", "listed twice"},
		{"output", "import: x\napis: [{name: gl, tables: t}]", "required"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.src))
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: error %q does not contain %q", c.name, err, c.msg)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	src := "import: x\napis: [{name: gl, tables: tables/gl, output: gl}]\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Path("tables/gl"); got != filepath.Join(dir, "tables", "gl") {
		t.Errorf("Path = %s", got)
	}
	if got := cfg.Path("/abs"); got != "/abs" {
		t.Errorf("Path(/abs) = %s", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRepository(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"gl", "egl"} {
		if _, ok := cfg.Lookup(name); !ok {
			t.Errorf("api %s missing", name)
		}
	}
}
