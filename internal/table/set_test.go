package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, file, src string) *Table {
	t.Helper()
	tbl, err := Parse(file, strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestMerge(t *testing.T) {
	face := mustParse(t, "face.txt", "@type Face\nFRONT 0x0404\nBACK 0x0405\n")
	draw := mustParse(t, "draw_buffer.txt", "@type DrawBuffer\nNONE 0\nFRONT 0x0404\n")

	s, err := Merge("gl", "GL_", []*Table{face, draw})
	if err != nil {
		t.Fatal(err)
	}
	if s.Tables[0].Type != "DrawBuffer" || s.Tables[1].Type != "Face" {
		t.Errorf("tables not sorted: %s, %s", s.Tables[0].Type, s.Tables[1].Type)
	}
	want := []Constant{
		{"NONE", 0},
		{"FRONT", 0x0404},
		{"BACK", 0x0405},
	}
	if diff := cmp.Diff(want, s.Constants); diff != "" {
		t.Errorf("constants mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeConflict(t *testing.T) {
	a := mustParse(t, "a.txt", "@type A\nFRONT 0x0404\n")
	b := mustParse(t, "b.txt", "@type B\nFRONT 0x0405\n")

	_, err := Merge("gl", "GL_", []*Table{a, b})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Name != "FRONT" {
		t.Errorf("conflict on %s", conflict.Name)
	}
	if !strings.Contains(err.Error(), "a.txt:2") || !strings.Contains(err.Error(), "b.txt:2") {
		t.Errorf("error %q lacks positions", err)
	}
}

func TestMergeDuplicateType(t *testing.T) {
	a := mustParse(t, "a.txt", "@type A\nONE 1\n")
	b := mustParse(t, "b.txt", "@type A\nTWO 2\n")
	_, err := Merge("gl", "GL_", []*Table{a, b})
	if err == nil || !strings.Contains(err.Error(), "type A defined in both a.txt and b.txt") {
		t.Fatalf("expected duplicate type error, got %v", err)
	}
}
