package gl

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/james4k/go-glenum"
)

func requireTables(t *testing.T) {
	t.Helper()
	if !glenum.NamesEnabled || !glenum.RangesEnabled {
		t.Skip("enum tables compiled out")
	}
}

func TestValueName(t *testing.T) {
	requireTables(t)
	cases := []struct {
		got  string
		want string
	}{
		{glenum.ValueName(TextureTarget2D), "TEXTURE_2D"},
		{glenum.ValueName(BufferTargetElementArray), "ELEMENT_ARRAY_BUFFER"},
		{glenum.ValueName(ErrorCodeInvalidFramebufferOperation), "INVALID_FRAMEBUFFER_OPERATION"},
		{glenum.ValueName(PixelInternalFormatDepth24Stencil8), "DEPTH24_STENCIL8"},
		{glenum.ValueName(CompareFunctionLessEqual), "LEQUAL"},
		{glenum.ValueName(DrawBufferNone), "NONE"},
		{glenum.ValueName(MemoryBarrierBitAll), "ALL_BARRIER_BITS"},
		{glenum.ValueName(TextureTarget(TEXTURE_BUFFER)), "TEXTURE_BUFFER"},
		{glenum.ValueName(BufferTarget(TEXTURE_BUFFER)), "TEXTURE_BUFFER"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestValueNameUnknown(t *testing.T) {
	// Values that exist in GL but not in the type.
	if name := glenum.ValueName(TextureTarget(ARRAY_BUFFER)); name != "" {
		t.Errorf("TextureTarget(ARRAY_BUFFER) named %q", name)
	}
	if name := glenum.ValueName(Face(0xDEAD)); name != "" {
		t.Errorf("Face(0xDEAD) named %q", name)
	}
}

func TestString(t *testing.T) {
	requireTables(t)
	if s := ShaderTypeCompute.String(); s != "COMPUTE_SHADER" {
		t.Errorf("String() = %q", s)
	}
	if s := ShaderType(0x1234).String(); s != "ShaderType(0x1234)" {
		t.Errorf("fallback String() = %q", s)
	}
}

func TestValueRange(t *testing.T) {
	requireTables(t)
	r := glenum.ValueRange[ShaderType]()
	want := []ShaderType{
		ShaderTypeVertex,
		ShaderTypeFragment,
		ShaderTypeGeometry,
		ShaderTypeTessControl,
		ShaderTypeTessEvaluation,
		ShaderTypeCompute,
	}
	if diff := cmp.Diff(want, r.Values()); diff != "" {
		t.Errorf("ValueRange mismatch (-want +got):\n%s", diff)
	}
	if r.At(2) != ShaderTypeGeometry {
		t.Errorf("At(2) = %v", r.At(2))
	}
	if !r.Contains(ShaderTypeCompute) || r.Contains(ShaderType(TEXTURE_2D)) {
		t.Error("Contains mismatch")
	}
}

func TestValueRangeCopied(t *testing.T) {
	requireTables(t)
	vals := TextureTarget(0).EnumValueRange()
	first := vals[0]
	vals[0] = 0xDEAD
	if got := TextureTarget(0).EnumValueRange()[0]; got != first {
		t.Errorf("table modified through EnumValueRange: 0x%04X", got)
	}
	if r := glenum.ValueRange[TextureTarget](); r.At(0) != TextureTarget(first) {
		t.Errorf("ValueRange().At(0) = %v", r.At(0))
	}
}

// Every value in a range has a name of its own type, and every typed
// constant is part of its type's range.
func TestRangesAndNamesAgree(t *testing.T) {
	requireTables(t)
	for _, info := range glenum.Types() {
		if info.API != "gl" {
			continue
		}
		if info.Prefix != Prefix {
			t.Errorf("%s: prefix %q", info.Type, info.Prefix)
		}
		seen := map[glenum.Enum]bool{}
		for _, e := range info.Entries {
			seen[e.Value] = true
		}
		if len(seen) == 0 {
			t.Errorf("%s: no entries", info.Type)
		}
	}

	checkRange(t, glenum.ValueRange[TextureTarget]())
	checkRange(t, glenum.ValueRange[PixelInternalFormat]())
	checkRange(t, glenum.ValueRange[DrawBuffer]())
	checkRange(t, glenum.ValueRange[MemoryBarrierBit]())
	checkRange(t, glenum.ValueRange[Capability]())
}

func checkRange[E glenum.Enumeration](t *testing.T, r glenum.Range[E]) {
	t.Helper()
	seen := map[E]bool{}
	for i, v := range r.All() {
		if glenum.ValueName(v) == "" {
			t.Errorf("%T value #%d (0x%04X) has no name", v, i, uint32(v))
		}
		if seen[v] {
			t.Errorf("%T value 0x%04X listed twice", v, uint32(v))
		}
		seen[v] = true
	}
}

func TestParse(t *testing.T) {
	requireTables(t)
	for _, name := range []string{"TEXTURE_CUBE_MAP", "GL_TEXTURE_CUBE_MAP"} {
		v, err := ParseTextureTarget(name)
		if err != nil {
			t.Fatalf("ParseTextureTarget(%q): %v", name, err)
		}
		if v != TextureTargetCubeMap {
			t.Errorf("ParseTextureTarget(%q) = %v", name, v)
		}
	}
	if _, err := ParseTextureTarget("ARRAY_BUFFER"); !errors.Is(err, glenum.ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	requireTables(t)
	type state struct {
		Target BufferTarget
		Usage  BufferUsage
		Bits   ClearBit
	}
	in := state{BufferTargetUniform, BufferUsageDynamicDraw, ClearBitDepth}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"Target":"UNIFORM_BUFFER","Usage":"DYNAMIC_DRAW","Bits":"DEPTH_BUFFER_BIT"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
	var out state
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}

	if _, err := json.Marshal(BufferTarget(0xFFFF)); err == nil {
		t.Error("expected error marshalling an unnamed value")
	}
	var bad BufferTarget
	if err := json.Unmarshal([]byte(`"TEXTURE_2D"`), &bad); err == nil {
		t.Error("expected error unmarshalling a foreign name")
	}
}

func TestArrayOfDrawBuffers(t *testing.T) {
	bufs := []DrawBuffer{
		DrawBufferColorAttachment0,
		DrawBufferColorAttachment1,
		DrawBufferNone,
	}
	a := glenum.NewArray(bufs...)
	if a.Copied() {
		t.Error("DrawBuffer has the size of GLenum and must not be copied")
	}
	want := []glenum.Enum{COLOR_ATTACHMENT0, COLOR_ATTACHMENT1, NONE}
	if diff := cmp.Diff(want, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if a.Pointer() != (*glenum.Enum)(&bufs[0]) {
		t.Error("Pointer does not alias the source slice")
	}
}
