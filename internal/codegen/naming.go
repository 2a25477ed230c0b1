package codegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/james4k/go-glenum/internal/table"
)

// Words kept upper case in derived member names.
var initialisms = map[string]bool{
	"API":  true,
	"BGR":  true,
	"BGRA": true,
	"CCW":  true,
	"CW":   true,
	"ES":   true,
	"EXT":  true,
	"GBM":  true,
	"GL":   true,
	"ID":   true,
	"KHR":  true,
	"LOD":  true,
	"RG":   true,
	"RGB":  true,
	"RGBA": true,
	"SRGB": true,
	"VG":   true,
}

var title = cases.Title(language.Und)

// Ident converts a native constant name to a Go identifier suffix:
// TEXTURE_CUBE_MAP becomes TextureCubeMap, RGBA32F stays RGBA32F and
// DEPTH24_STENCIL8 becomes Depth24Stencil8.
func Ident(name string) string {
	var b strings.Builder
	for _, w := range strings.Split(name, "_") {
		if w == "" {
			continue
		}
		b.WriteString(identWord(w))
	}
	return b.String()
}

func identWord(w string) string {
	if initialisms[w] {
		return w
	}
	i := strings.IndexFunc(w, unicode.IsDigit)
	if i < 0 {
		return title.String(w)
	}
	letters, rest := w[:i], w[i:]
	if strings.Trim(letters, "RGBAS") == "" {
		// Channel layouts such as RGBA32F and SRGB8.
		return w
	}
	return title.String(letters) + rest
}

// MemberName is the Go name of the typed constant for e.
func MemberName(typ string, e table.Entry) string {
	if e.Member != "" {
		return typ + e.Member
	}
	return typ + Ident(e.Name)
}

// lowerFirst turns an exported type name into the name of a package
// variable.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	n := 1
	for n < len(r) && unicode.IsUpper(r[n]) && (n+1 == len(r) || unicode.IsUpper(r[n+1])) {
		n++
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
