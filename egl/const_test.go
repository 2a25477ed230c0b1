//go:build glheaders

package egl

import "testing"

func TestConstHeaders(t *testing.T) {
	for _, d := range headerTable {
		if d.a != uint32(d.b) {
			t.Errorf("%s: %#x != %#x", d.name, d.a, uint32(d.b))
		}
	}
}
