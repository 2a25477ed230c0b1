package glenum

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Array passes a group of typed enum values to native calls that take a
// count and a GLenum pointer.
//
// When E has the same size as Enum the array shares the caller's backing
// store: it must not outlive the source slice and it sees later writes to
// it. Any other element type is converted into a private copy.
type Array[E constraints.Integer] struct {
	values []Enum
	copied bool
}

// NewArray returns an Array over enums. Pass a fixed-size array as a[:].
func NewArray[E constraints.Integer](enums ...E) Array[E] {
	if len(enums) == 0 {
		return Array[E]{}
	}
	var zero E
	if unsafe.Sizeof(zero) == unsafe.Sizeof(Enum(0)) {
		return Array[E]{
			values: unsafe.Slice((*Enum)(unsafe.Pointer(&enums[0])), len(enums)),
		}
	}
	values := make([]Enum, len(enums))
	for i, e := range enums {
		values[i] = Enum(e)
	}
	return Array[E]{values: values, copied: true}
}

// ArrayOf returns an Array over count values starting at p.
func ArrayOf[E constraints.Integer](p *E, count int) Array[E] {
	if p == nil || count <= 0 {
		return Array[E]{}
	}
	return NewArray(unsafe.Slice(p, count)...)
}

func (a Array[E]) Count() int {
	return len(a.values)
}

// Values returns the native values. The slice must not be modified.
func (a Array[E]) Values() []Enum {
	return a.values
}

// Pointer returns the address of the first value, or nil if the array is
// empty.
func (a Array[E]) Pointer() *Enum {
	if len(a.values) == 0 {
		return nil
	}
	return &a.values[0]
}

// Copied reports whether the values were converted into a private copy.
func (a Array[E]) Copied() bool {
	return a.copied
}
