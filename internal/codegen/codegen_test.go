package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/james4k/go-glenum/internal/table"
)

func TestIdent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ARRAY_BUFFER", "ArrayBuffer"},
		{"TEXTURE_CUBE_MAP", "TextureCubeMap"},
		{"TEXTURE_2D", "Texture2D"},
		{"CLIP_DISTANCE0", "ClipDistance0"},
		{"RGBA32F", "RGBA32F"},
		{"RGB5_A1", "RGB5A1"},
		{"SRGB8_ALPHA8", "SRGB8Alpha8"},
		{"DEPTH24_STENCIL8", "Depth24Stencil8"},
		{"DEPTH_COMPONENT32F", "DepthComponent32F"},
		{"SRC1_ALPHA", "Src1Alpha"},
		{"FRAMEBUFFER_SRGB", "FramebufferSRGB"},
		{"BIND_TO_TEXTURE_RGB", "BindToTextureRGB"},
		{"GL_COLORSPACE", "GLColorspace"},
		{"NO_ERROR", "NoError"},
	}
	for _, c := range cases {
		if got := Ident(c.in); got != c.want {
			t.Errorf("Ident(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMemberName(t *testing.T) {
	if got := MemberName("BufferTarget", table.Entry{Name: "ARRAY_BUFFER", Member: "Array"}); got != "BufferTargetArray" {
		t.Errorf("override: got %s", got)
	}
	if got := MemberName("DataType", table.Entry{Name: "UNSIGNED_BYTE"}); got != "DataTypeUnsignedByte" {
		t.Errorf("derived: got %s", got)
	}
}

func TestLowerFirst(t *testing.T) {
	cases := map[string]string{
		"BufferTarget": "bufferTarget",
		"ClientAPI":    "clientAPI",
		"GLThing":      "glThing",
		"RGB":          "rgb",
		"":             "",
	}
	for in, want := range cases {
		if got := lowerFirst(in); got != want {
			t.Errorf("lowerFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func testSet(t *testing.T) *table.Set {
	t.Helper()
	src := []string{
		"@type ContextAttrib\n@doc ContextAttrib is an attribute passed to eglCreateContext.\n" +
			"CONTEXT_MAJOR_VERSION 0x3098 MajorVersion\nCONTEXT_CLIENT_VERSION 0x3098 ClientVersion\nNONE 0x3038\n",
		"@type SurfaceTypeBit\n@bitfield\nPBUFFER_BIT 0x0001 Pbuffer\nWINDOW_BIT 0x0004 Window\n",
	}
	var tables []*table.Table
	for i, s := range src {
		tbl, err := table.Parse("t"+string(rune('0'+i))+".txt", strings.NewReader(s))
		if err != nil {
			t.Fatal(err)
		}
		tables = append(tables, tbl)
	}
	set, err := table.Merge("egl", "EGL_", tables)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func testOptions() Options {
	return Options{
		Package:   "egl",
		Import:    "github.com/james4k/go-glenum",
		Source:    "tables/egl",
		NamesTag:  "glenum_nonames",
		RangesTag: "glenum_noranges",
	}
}

func TestGenerate(t *testing.T) {
	files, err := Generate(testOptions(), testSet(t))
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	content := map[string]string{}
	for _, f := range files {
		names = append(names, f.Name)
		content[f.Name] = string(f.Content)

		if _, err := parser.ParseFile(token.NewFileSet(), f.Name, f.Content, parser.ParseComments); err != nil {
			t.Errorf("%s does not parse: %v", f.Name, err)
		}
		if !strings.HasPrefix(string(f.Content), "// Code generated by glenumgen from tables/egl. DO NOT EDIT.") {
			t.Errorf("%s lacks the generated header", f.Name)
		}
	}
	if diff := cmp.Diff(outputs, names); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	expect := map[string][]string{
		"enums.go": {
			`const Prefix = "EGL_"`,
			"CONTEXT_CLIENT_VERSION = 0x3098",
			"// ContextAttrib is an attribute passed to eglCreateContext.",
			"type ContextAttrib glenum.Enum",
			"ContextAttribClientVersion ContextAttrib = CONTEXT_CLIENT_VERSION",
			"// SurfaceTypeBit is a native enumeration.",
			"func ParseSurfaceTypeBit(name string) (SurfaceTypeBit, error) {",
			`return glenum.Parse[SurfaceTypeBit]("egl", "SurfaceTypeBit", name)`,
		},
		"enum_names.go": {
			"//go:build !glenum_nonames",
			"case ContextAttribMajorVersion:\n\t\treturn \"CONTEXT_MAJOR_VERSION\"",
			`{Name: "CONTEXT_CLIENT_VERSION", Value: CONTEXT_CLIENT_VERSION},`,
			"Bitfield: true,",
		},
		"enum_names_stub.go": {
			"//go:build glenum_nonames",
			"func (SurfaceTypeBit) EnumValueName() string {\n\treturn \"\"\n}",
		},
		"enum_ranges.go": {
			"//go:build !glenum_noranges",
			"var contextAttribValues = [...]glenum.Enum{",
			"return append([]glenum.Enum(nil), surfaceTypeBitValues[:]...)",
		},
		"enum_ranges_stub.go": {
			"//go:build glenum_noranges",
			"func (ContextAttrib) EnumValueRange() []glenum.Enum {\n\treturn nil\n}",
		},
	}
	for name, snippets := range expect {
		for _, s := range snippets {
			if !strings.Contains(content[name], s) {
				t.Errorf("%s does not contain %q", name, s)
			}
		}
	}

	// Aliased values appear once in the switch and the range.
	if strings.Contains(content["enum_names.go"], "case ContextAttribClientVersion:") {
		t.Error("duplicate value in EnumValueName switch")
	}
	if strings.Count(content["enum_ranges.go"], "CONTEXT_CLIENT_VERSION") != 0 {
		t.Error("duplicate value in range table")
	}
}

func TestGenerateCollision(t *testing.T) {
	tbl, err := table.Parse("t.txt", strings.NewReader("@type Face\nFRONT 1 X\nBACK 2 X\n"))
	if err != nil {
		t.Fatal(err)
	}
	set, err := table.Merge("gl", "GL_", []*table.Table{tbl})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Generate(testOptions(), set)
	if err == nil || !strings.Contains(err.Error(), "FaceX collides") {
		t.Errorf("expected member collision, got %v", err)
	}
}
