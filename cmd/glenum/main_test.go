package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/james4k/go-glenum"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if !glenum.NamesEnabled {
		t.Skip("enum names compiled out")
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fields(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			rows = append(rows, strings.Fields(line))
		}
	}
	return rows
}

func TestParseValues(t *testing.T) {
	got := parseValues([]string{"0x0DE1", "10", "GL_FOO", "0x1FFFFFFFF", "ff"})
	want := []glenum.Enum{10, 0x10, 0xFF, 0x0DE1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseValues mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "lookup", "--api", "gl", "--type", "TextureTarget", "0x0DE1")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"3553", "0x0DE1", "gl", "TextureTarget", "GL_TEXTURE_2D"}}
	if diff := cmp.Diff(want, fields(out)); diff != "" {
		t.Errorf("lookup mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupBitfield(t *testing.T) {
	out, err := execute(t, "lookup", "-b", "--type", "ClearBit", "0x4100")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestName(t *testing.T) {
	out, err := execute(t, "name", "--api", "egl", "egl_context_client_version")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"EGL_CONTEXT_CLIENT_VERSION", "egl", "ContextAttrib", "0x3098", "12440"}}
	if diff := cmp.Diff(want, fields(out)); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}

	if _, err := execute(t, "name", "GL_NOT_A_THING"); err == nil || !strings.Contains(err.Error(), "GL_NOT_A_THING") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types", "--api", "gl")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, row := range fields(out) {
		if row[0] != "gl" {
			t.Errorf("foreign api row %q", row)
		}
		if row[1] == "ClearBit" {
			found = true
			if diff := cmp.Diff([]string{"gl", "ClearBit", "bitfield", "3"}, row); diff != "" {
				t.Errorf("ClearBit mismatch (-want +got):\n%s", diff)
			}
		}
	}
	if !found {
		t.Error("ClearBit not listed")
	}
}

func TestRange(t *testing.T) {
	out, err := execute(t, "range", "gl", "ShaderType")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, row := range fields(out) {
		names = append(names, row[0])
	}
	want := []string{
		"GL_VERTEX_SHADER",
		"GL_FRAGMENT_SHADER",
		"GL_GEOMETRY_SHADER",
		"GL_TESS_CONTROL_SHADER",
		"GL_TESS_EVALUATION_SHADER",
		"GL_COMPUTE_SHADER",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}

	if _, err := execute(t, "range", "gl", "Nope"); err == nil {
		t.Error("expected error for an unknown type")
	}
}
