package glenum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testEnum uint32

func TestArrayShared(t *testing.T) {
	src := []testEnum{1, 2, 3}
	a := NewArray(src...)
	if a.Copied() {
		t.Fatal("uint32-sized values copied")
	}
	if a.Count() != 3 {
		t.Errorf("Count() = %d", a.Count())
	}
	if a.Pointer() != (*Enum)(&src[0]) {
		t.Error("Pointer does not alias the source")
	}
	src[2] = 9
	if diff := cmp.Diff([]Enum{1, 2, 9}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestArraySharedSigned(t *testing.T) {
	src := []int32{0x3024, 8, 0x3038}
	a := NewArray(src...)
	if a.Copied() {
		t.Fatal("int32 values copied")
	}
	if diff := cmp.Diff([]Enum{0x3024, 8, 0x3038}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayCopied(t *testing.T) {
	small := []uint16{0x0DE1, 0x8513}
	a := NewArray(small...)
	if !a.Copied() {
		t.Error("uint16 values not copied")
	}
	small[0] = 0
	if diff := cmp.Diff([]Enum{0x0DE1, 0x8513}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	wide := []int64{0x1902, 0x8CE0}
	b := NewArray(wide...)
	if !b.Copied() {
		t.Error("int64 values not copied")
	}
	if diff := cmp.Diff([]Enum{0x1902, 0x8CE0}, b.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if b.Pointer() != &b.Values()[0] {
		t.Error("Pointer does not address the copy")
	}
}

func TestArrayEmpty(t *testing.T) {
	for _, a := range []Array[testEnum]{
		NewArray[testEnum](),
		NewArray([]testEnum{}...),
		ArrayOf[testEnum](nil, 4),
	} {
		if a.Count() != 0 || a.Pointer() != nil || a.Copied() {
			t.Errorf("empty array = %+v", a)
		}
	}
}

func TestArrayOf(t *testing.T) {
	var fixed [4]testEnum
	fixed[0], fixed[1] = 0x8CE0, 0x8CE1
	a := ArrayOf(&fixed[0], 2)
	if a.Count() != 2 || a.Copied() {
		t.Fatalf("ArrayOf = %+v", a)
	}
	if a.Pointer() != (*Enum)(&fixed[0]) {
		t.Error("Pointer does not alias the array")
	}
	if b := ArrayOf(&fixed[0], 0); b.Count() != 0 {
		t.Errorf("zero count gives %d values", b.Count())
	}
}
