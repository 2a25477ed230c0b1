package glenum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRange(t *testing.T) {
	base := []Enum{0x0DE1, 0x806F, 0x8513}
	r := RangeOf[testEnum](base)
	if r.Len() != 3 || r.Empty() {
		t.Fatalf("Len() = %d", r.Len())
	}
	if r.At(1) != 0x806F {
		t.Errorf("At(1) = %#x", r.At(1))
	}
	if !r.Contains(0x8513) || r.Contains(0x1234) {
		t.Error("Contains mismatch")
	}

	var got []testEnum
	for i, v := range r.All() {
		if testEnum(base[i]) != v {
			t.Errorf("All() index %d = %#x", i, v)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff(r.Values(), got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}

	vals := r.Values()
	vals[0] = 0
	if r.At(0) != 0x0DE1 {
		t.Error("Values shares the backing table")
	}
}

func TestRangeBreak(t *testing.T) {
	r := RangeOf[testEnum]([]Enum{1, 2, 3, 4})
	n := 0
	for _, v := range r.All() {
		n++
		if v == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d values after break", n)
	}
}

func TestRangeEmpty(t *testing.T) {
	var r Range[testEnum]
	if !r.Empty() || r.Len() != 0 || len(r.Values()) != 0 {
		t.Error("zero Range is not empty")
	}
	for range r.All() {
		t.Error("empty range yielded a value")
	}
}
