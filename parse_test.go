package glenum

import (
	"errors"
	"testing"
)

type color uint32

func (c color) EnumValueName() string {
	if !NamesEnabled {
		return ""
	}
	switch c {
	case 1:
		return "RED"
	case 2:
		return "GREEN"
	}
	return ""
}

func (color) EnumValueRange() []Enum {
	if !RangesEnabled {
		return nil
	}
	return []Enum{1, 2}
}

func (c color) String() string {
	if name := c.EnumValueName(); name != "" {
		return name
	}
	return Format("Color", c)
}

func TestParse(t *testing.T) {
	if !NamesEnabled {
		if _, err := Parse[color]("test", "Color", "RED"); !errors.Is(err, ErrNoTables) {
			t.Errorf("expected ErrNoTables, got %v", err)
		}
		return
	}
	for _, name := range []string{"RED", "TEST_RED", "CRIMSON"} {
		v, err := Parse[color]("test", "Color", name)
		if err != nil {
			t.Errorf("Parse(%q): %v", name, err)
			continue
		}
		if v != 1 {
			t.Errorf("Parse(%q) = %d", name, v)
		}
	}
	if _, err := Parse[color]("test", "Color", "A_BIT"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
	if _, err := Parse[color]("test", "Shade", "RED"); err == nil {
		t.Error("expected error for an unregistered type")
	}
}

func TestValueNameAndRange(t *testing.T) {
	if NamesEnabled {
		if name := ValueName(color(2)); name != "GREEN" {
			t.Errorf("ValueName = %q", name)
		}
	} else if name := ValueName(color(2)); name != "" {
		t.Errorf("ValueName = %q with names compiled out", name)
	}
	if name := ValueName(color(7)); name != "" {
		t.Errorf("ValueName(7) = %q", name)
	}

	r := ValueRange[color]()
	if RangesEnabled && r.Len() != 2 {
		t.Errorf("Len() = %d", r.Len())
	}
	if !RangesEnabled && !r.Empty() {
		t.Error("range not empty with ranges compiled out")
	}
}

func TestFormat(t *testing.T) {
	if s := Format("Color", color(0x1F)); s != "Color(0x001F)" {
		t.Errorf("Format = %q", s)
	}
	if s := Format("Mask", uint32(0xFFFFFFFF)); s != "Mask(0xFFFFFFFF)" {
		t.Errorf("Format = %q", s)
	}
	if s := color(9).String(); s != "Color(0x0009)" {
		t.Errorf("String() = %q", s)
	}
}

func TestMarshalText(t *testing.T) {
	b, err := MarshalText(color(1))
	if !NamesEnabled {
		if !errors.Is(err, ErrNoTables) {
			t.Errorf("expected ErrNoTables, got %v", err)
		}
		return
	}
	if err != nil || string(b) != "RED" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
	if _, err := MarshalText(color(5)); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}
