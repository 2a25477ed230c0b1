package glenum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func init() {
	Register(TypeInfo{
		API:    "test",
		Prefix: "TEST_",
		Type:   "Color",
		Entries: []Entry{
			{"RED", 1},
			{"GREEN", 2},
			{"CRIMSON", 1},
		},
	})
	Register(TypeInfo{
		API:      "test",
		Prefix:   "TEST_",
		Type:     "Mask",
		Bitfield: true,
		Entries: []Entry{
			{"A_BIT", 0x1},
			{"B_BIT", 0x2},
			{"C_BIT", 0x4},
			{"AB_BITS", 0x3},
		},
	})
}

func testMatches(ms []Match) []Match {
	var out []Match
	for _, m := range ms {
		if m.API == "test" {
			out = append(out, m)
		}
	}
	return out
}

func TestLookup(t *testing.T) {
	got := testMatches(Lookup(1))
	want := []Match{
		{API: "test", Prefix: "TEST_", Type: "Color", Name: "CRIMSON", Value: 1},
		{API: "test", Prefix: "TEST_", Type: "Color", Name: "RED", Value: 1},
		{API: "test", Prefix: "TEST_", Type: "Mask", Name: "A_BIT", Value: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
	}
	if got[0].FullName() != "TEST_CRIMSON" {
		t.Errorf("FullName() = %q", got[0].FullName())
	}
	if ms := testMatches(Lookup(0x99)); len(ms) != 0 {
		t.Errorf("unexpected matches %v", ms)
	}
}

func TestLookupName(t *testing.T) {
	for _, name := range []string{"green", "TEST_GREEN", " Test_Green "} {
		got := testMatches(LookupName(name))
		want := []Match{{API: "test", Prefix: "TEST_", Type: "Color", Name: "GREEN", Value: 2}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LookupName(%q) mismatch (-want +got):\n%s", name, diff)
		}
	}
	if ms := LookupName("OTHER_GREEN"); len(ms) != 0 {
		t.Errorf("foreign prefix matched %v", ms)
	}
}

func TestLookupBitfield(t *testing.T) {
	cases := []struct {
		v    Enum
		want string
	}{
		{0x1, "A_BIT"},
		{0x5, "A_BIT | C_BIT"},
		{0x7, "A_BIT | B_BIT | C_BIT"},
		{0x3, "A_BIT | B_BIT"},
	}
	for _, c := range cases {
		var got []string
		for _, m := range testMatches(LookupBitfield(c.v)) {
			got = append(got, m.Name)
		}
		if diff := cmp.Diff([]string{c.want}, got); diff != "" {
			t.Errorf("LookupBitfield(%#x) mismatch (-want +got):\n%s", c.v, diff)
		}
	}
	ms := testMatches(LookupBitfield(0x5))
	if len(ms) != 1 || ms[0].FullName() != "TEST_A_BIT | TEST_C_BIT" {
		t.Errorf("FullName of 0x5 expansion = %v", ms)
	}
	if ms := testMatches(LookupBitfield(0x9)); len(ms) != 0 {
		t.Errorf("uncovered bits matched %v", ms)
	}
	if ms := LookupBitfield(0); ms != nil {
		t.Errorf("zero matched %v", ms)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	Register(TypeInfo{API: "test", Type: "Color", Entries: []Entry{{"BLUE", 3}}})
	info, ok := LookupType("test", "Color")
	if !ok {
		t.Fatal("Color not registered")
	}
	if len(info.Entries) != 3 || info.Prefix != "TEST_" {
		t.Errorf("duplicate registration replaced %+v", info)
	}
	if _, ok := LookupType("test", "Missing"); ok {
		t.Error("LookupType found a missing type")
	}
}

func TestTypesSorted(t *testing.T) {
	var got []string
	for _, info := range Types() {
		if info.API == "test" {
			got = append(got, info.Type)
		}
	}
	if diff := cmp.Diff([]string{"Color", "Mask"}, got); diff != "" {
		t.Errorf("Types mismatch (-want +got):\n%s", diff)
	}
}
