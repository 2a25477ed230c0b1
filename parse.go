package glenum

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownName is returned when a name matches no value of the type.
	ErrUnknownName = errors.New("glenum: unknown enum name")
	// ErrNoTables is returned when the name tables were compiled out.
	ErrNoTables = errors.New("glenum: enum name tables compiled out")
)

// Parse returns the value of the registered type typ of api whose constant
// name is name. The API prefix is optional and aliases sharing a value
// are accepted.
func Parse[E ~uint32](api, typ, name string) (E, error) {
	if !NamesEnabled {
		return 0, ErrNoTables
	}
	info, ok := LookupType(api, typ)
	if !ok {
		return 0, fmt.Errorf("glenum: type %s.%s is not registered", api, typ)
	}
	name = strings.TrimPrefix(name, info.Prefix)
	for _, e := range info.Entries {
		if e.Name == name {
			return E(e.Value), nil
		}
	}
	return 0, fmt.Errorf("%w: %s.%s %q", ErrUnknownName, api, typ, name)
}

// MarshalText is the shared encoding.TextMarshaler implementation. Values
// without a name are rejected so that the text form always parses back.
func MarshalText[E Enumeration](v E) ([]byte, error) {
	name := v.EnumValueName()
	if name == "" {
		if !NamesEnabled {
			return nil, ErrNoTables
		}
		return nil, fmt.Errorf("%w: %T has no name for 0x%04X", ErrUnknownName, v, uint32(v))
	}
	return []byte(name), nil
}
