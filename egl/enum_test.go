package egl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/james4k/go-glenum"
)

func TestAliasedValue(t *testing.T) {
	if !glenum.NamesEnabled || !glenum.RangesEnabled {
		t.Skip("enum tables compiled out")
	}
	if ContextAttribClientVersion != ContextAttribMajorVersion {
		t.Fatal("CONTEXT_CLIENT_VERSION and CONTEXT_MAJOR_VERSION differ")
	}
	// The first listed name wins.
	if name := glenum.ValueName(ContextAttribClientVersion); name != "CONTEXT_MAJOR_VERSION" {
		t.Errorf("name = %q", name)
	}
	// The range keeps the value once.
	n := 0
	for _, v := range glenum.ValueRange[ContextAttrib]().All() {
		if v == ContextAttribMajorVersion {
			n++
		}
	}
	if n != 1 {
		t.Errorf("CONTEXT_MAJOR_VERSION listed %d times", n)
	}
	// Both names parse.
	for _, name := range []string{"EGL_CONTEXT_CLIENT_VERSION", "CONTEXT_MAJOR_VERSION"} {
		v, err := ParseContextAttrib(name)
		if err != nil {
			t.Errorf("ParseContextAttrib(%q): %v", name, err)
			continue
		}
		if v != ContextAttribMajorVersion {
			t.Errorf("ParseContextAttrib(%q) = %v", name, v)
		}
	}
}

func TestLookupAliases(t *testing.T) {
	if !glenum.NamesEnabled {
		t.Skip("enum names compiled out")
	}
	var names []string
	for _, m := range glenum.Lookup(CONTEXT_CLIENT_VERSION) {
		if m.API == "egl" {
			names = append(names, m.FullName())
		}
	}
	want := []string{"EGL_CONTEXT_CLIENT_VERSION", "EGL_CONTEXT_MAJOR_VERSION"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
	}
}

func TestSurfaceTypeBitfield(t *testing.T) {
	if !glenum.NamesEnabled {
		t.Skip("enum names compiled out")
	}
	v := glenum.Enum(SurfaceTypeBitWindow | SurfaceTypeBitPbuffer)
	var got []string
	for _, m := range glenum.LookupBitfield(v) {
		if m.API == "egl" && m.Type == "SurfaceTypeBit" {
			got = append(got, m.Name)
		}
	}
	want := []string{"PBUFFER_BIT | WINDOW_BIT"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LookupBitfield mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorCodeString(t *testing.T) {
	if !glenum.NamesEnabled {
		if s := ErrorCodeBadMatch.String(); s != "ErrorCode(0x3009)" {
			t.Errorf("String() = %q", s)
		}
		return
	}
	if s := ErrorCodeBadMatch.String(); s != "BAD_MATCH" {
		t.Errorf("String() = %q", s)
	}
}

// EGL attribute lists are EGLint arrays terminated by EGL_NONE.
func TestAttribList(t *testing.T) {
	attribs := []int32{
		int32(ConfigAttribRedSize), 8,
		int32(ConfigAttribSurfaceType), int32(SurfaceTypeBitWindow),
		int32(ConfigAttribNone),
	}
	a := glenum.NewArray(attribs...)
	if a.Copied() {
		t.Error("int32 attributes must be passed without copying")
	}
	want := []glenum.Enum{RED_SIZE, 8, SURFACE_TYPE, WINDOW_BIT, NONE}
	if diff := cmp.Diff(want, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	attribs[1] = 5
	if a.Values()[1] != 5 {
		t.Error("shared array does not observe writes to the source")
	}
}
