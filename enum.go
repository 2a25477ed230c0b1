// Package glenum maps native OpenGL and EGL enumeration values to their
// constant names and to iterable typed ranges.
//
// The typed enums live in the generated gl and egl packages. Their name
// and range tables can be compiled out with the glenum_nonames and
// glenum_noranges build tags, in which case ValueName returns "" and
// ValueRange returns an empty Range for every type.
package glenum

import "fmt"

// Enum is the native enum storage type, GLenum and EGLenum alike.
type Enum = uint32

// Enumeration is implemented by the generated enum types.
type Enumeration interface {
	~uint32
	fmt.Stringer

	// EnumValueName returns the constant name without its API prefix,
	// or "" when the value is not part of the type.
	EnumValueName() string
	// EnumValueRange returns a copy of every value of the type in table
	// order. It does not depend on the receiver.
	EnumValueRange() []Enum
}

// ValueName returns the native constant name of v without the API prefix
// ("TEXTURE_2D" for GL_TEXTURE_2D). The result is "" for values outside of
// E's table and for every value when names are compiled out.
func ValueName[E Enumeration](v E) string {
	return v.EnumValueName()
}

// ValueRange returns all values of E. The range is empty when ranges are
// compiled out.
func ValueRange[E Enumeration]() Range[E] {
	var zero E
	return Range[E]{base: zero.EnumValueRange()}
}

// Format is the fallback String form of a value with no known name.
func Format[E ~uint32](typeName string, v E) string {
	return fmt.Sprintf("%s(0x%04X)", typeName, uint32(v))
}
