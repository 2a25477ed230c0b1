// Package codegen renders the Go enum packages from merged tables.
package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"github.com/james4k/go-glenum/internal/table"
)

// Options control the generated package.
type Options struct {
	Package   string
	Import    string
	Source    string
	NamesTag  string
	RangesTag string
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

type member struct {
	Ident string
	Const string
}

type enumType struct {
	Name     string
	Var      string
	Comment  string
	Bitfield bool
	Members  []member
	Unique   []member
}

type data struct {
	Options
	API       string
	Prefix    string
	Constants []table.Constant
	Types     []enumType
}

// Generate renders all files of one API.
func Generate(opts Options, set *table.Set) ([]File, error) {
	d, err := newData(opts, set)
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(outputs))
	for _, name := range outputs {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
			return nil, errors.Wrapf(err, "executing %s", name)
		}
		src, err := format(name, buf.Bytes())
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: name, Content: src})
	}
	return files, nil
}

func newData(opts Options, set *table.Set) (*data, error) {
	d := &data{
		Options:   opts,
		API:       set.API,
		Prefix:    set.Prefix,
		Constants: set.Constants,
	}
	idents := map[string]string{}
	for _, c := range set.Constants {
		idents[c.Name] = "constant " + c.Name
	}
	idents["Prefix"] = "the Prefix constant"

	for _, t := range set.Tables {
		et := enumType{
			Name:     t.Type,
			Var:      lowerFirst(t.Type) + "Values",
			Comment:  comment(t),
			Bitfield: t.Bitfield,
		}
		if prev, dup := idents[t.Type]; dup {
			return nil, errors.Errorf("%s: type %s collides with %s", t.File, t.Type, prev)
		}
		idents[t.Type] = "type " + t.Type

		for _, e := range t.Entries {
			m := member{Ident: MemberName(t.Type, e), Const: e.Name}
			if prev, dup := idents[m.Ident]; dup {
				return nil, errors.Errorf("%s:%d: member %s collides with %s", t.File, e.Line, m.Ident, prev)
			}
			idents[m.Ident] = fmt.Sprintf("%s member %s", t.Type, e.Name)
			et.Members = append(et.Members, m)
		}
		for _, e := range t.Unique() {
			et.Unique = append(et.Unique, member{Ident: MemberName(t.Type, e), Const: e.Name})
		}
		d.Types = append(d.Types, et)
	}
	return d, nil
}

func comment(t *table.Table) string {
	doc := t.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s is a native enumeration.", t.Type)
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

func hex(v uint32) string {
	if v > 0xFFFF {
		return fmt.Sprintf("0x%08X", v)
	}
	return fmt.Sprintf("0x%04X", v)
}

func format(name string, src []byte) ([]byte, error) {
	out, err := imports.Process(name, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "formatting %s", name)
	}
	return out, nil
}
