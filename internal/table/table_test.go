package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const blendEquation = `# blend equations
@type BlendEquation
@doc BlendEquation combines the source and destination blend terms.
FUNC_ADD       0x8006  Add
FUNC_SUBTRACT  0x800A  Subtract

MIN            32775
`

func TestParse(t *testing.T) {
	tbl, err := Parse("blend_equation.txt", strings.NewReader(blendEquation))
	if err != nil {
		t.Fatal(err)
	}
	want := &Table{
		File: "blend_equation.txt",
		Type: "BlendEquation",
		Doc:  "BlendEquation combines the source and destination blend terms.",
		Entries: []Entry{
			{Name: "FUNC_ADD", Value: 0x8006, Member: "Add", Line: 4},
			{Name: "FUNC_SUBTRACT", Value: 0x800A, Member: "Subtract", Line: 5},
			{Name: "MIN", Value: 0x8007, Line: 7},
		},
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBitfield(t *testing.T) {
	src := "@type ClearBit\n@bitfield\nCOLOR_BUFFER_BIT 0x4000 Color\n"
	tbl, err := Parse("clear_bit.txt", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Bitfield {
		t.Error("expected bitfield table")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"no type", "ZERO 0\n", 1, "entry before @type"},
		{"missing type", "# empty\n", 1, "missing @type"},
		{"no entries", "@type Empty\n", 1, "has no entries"},
		{"duplicate type", "@type A\n@type B\n", 2, "duplicate @type"},
		{"bad type", "@type lower\n", 1, "invalid type name"},
		{"bad directive", "@type A\n@flags\n", 2, "unknown directive"},
		{"bad value", "@type A\nONE 0xZZ\n", 2, "bad value for ONE"},
		{"overflow", "@type A\nBIG 0x100000000\n", 2, "bad value for BIG"},
		{"bad name", "@type A\nlower 1\n", 2, "invalid constant name"},
		{"bad member", "@type A\nONE 1 one_\n", 2, "invalid member name"},
		{"columns", "@type A\nONE\n", 2, "expected NAME VALUE"},
		{"duplicate name", "@type A\nONE 1\nONE 1\n", 3, "duplicate constant ONE (first on line 2)"},
	}
	for _, c := range cases {
		_, err := Parse("t.txt", strings.NewReader(c.src))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected *ParseError, got %v", c.name, err)
			continue
		}
		if perr.Line != c.line {
			t.Errorf("%s: line = %d, want %d", c.name, perr.Line, c.line)
		}
		if !strings.Contains(perr.Msg, c.msg) {
			t.Errorf("%s: message %q does not contain %q", c.name, perr.Msg, c.msg)
		}
		if !strings.HasPrefix(err.Error(), "t.txt:") {
			t.Errorf("%s: error %q lacks file position", c.name, err)
		}
	}
}

func TestUnique(t *testing.T) {
	src := "@type ContextAttrib\nCONTEXT_MAJOR_VERSION 0x3098\nCONTEXT_CLIENT_VERSION 0x3098\nNONE 0x3038\n"
	tbl, err := Parse("ctx.txt", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range tbl.Unique() {
		names = append(names, e.Name)
	}
	want := []string{"CONTEXT_MAJOR_VERSION", "NONE"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Unique mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("z.txt", "@type Alpha\nONE 1\n")
	write("a.txt", "@type Zeta\nTWO 2\n")
	write("notes.md", "ignored")

	tables, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 || tables[0].Type != "Alpha" || tables[1].Type != "Zeta" {
		t.Errorf("unexpected tables %+v", tables)
	}

	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for empty dir")
	}
}

func TestLoadDirRepository(t *testing.T) {
	for _, api := range []string{"gl", "egl"} {
		tables, err := LoadDir(filepath.Join("..", "..", "tables", api))
		if err != nil {
			t.Fatalf("%s: %v", api, err)
		}
		if _, err := Merge(api, strings.ToUpper(api)+"_", tables); err != nil {
			t.Errorf("%s: %v", api, err)
		}
	}
}
