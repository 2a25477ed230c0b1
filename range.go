package glenum

import "iter"

// Range is a read-only view of the values of an enumerated type. It is
// backed by the type's base-typed table and converts each element to E on
// access.
type Range[E ~uint32] struct {
	base []Enum
}

// RangeOf returns a Range over the given base values.
func RangeOf[E ~uint32](base []Enum) Range[E] {
	return Range[E]{base: base}
}

func (r Range[E]) Len() int {
	return len(r.base)
}

func (r Range[E]) Empty() bool {
	return len(r.base) == 0
}

// At returns the i'th value. It panics if i is out of range.
func (r Range[E]) At(i int) E {
	return E(r.base[i])
}

// All iterates over the index and value of each element.
func (r Range[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range r.base {
			if !yield(i, E(v)) {
				return
			}
		}
	}
}

// Values returns a copy of the range as a slice of E.
func (r Range[E]) Values() []E {
	out := make([]E, len(r.base))
	for i, v := range r.base {
		out[i] = E(v)
	}
	return out
}

func (r Range[E]) Contains(v E) bool {
	for _, b := range r.base {
		if b == Enum(v) {
			return true
		}
	}
	return false
}
