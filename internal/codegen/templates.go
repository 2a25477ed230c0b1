package codegen

import "text/template"

const header = `// Code generated by glenumgen from {{.Source}}. DO NOT EDIT.
`

const enumsTmpl = header + `
package {{.Package}}

import "{{.Import}}"

// Prefix is the prefix of the native {{.API}} constant names.
const Prefix = "{{.Prefix}}"

// Native constants, without the {{.Prefix}} prefix.
const (
{{- range .Constants}}
	{{.Name}} = {{hex .Value}}
{{- end}}
)
{{range .Types}}
{{.Comment}}
type {{.Name}} glenum.Enum

const (
{{- $t := .}}
{{- range .Members}}
	{{.Ident}} {{$t.Name}} = {{.Const}}
{{- end}}
)

func (v {{.Name}}) String() string {
	if name := v.EnumValueName(); name != "" {
		return name
	}
	return glenum.Format("{{.Name}}", v)
}

// Parse{{.Name}} returns the {{.Name}} with the given constant name. The
// {{$.Prefix}} prefix is optional.
func Parse{{.Name}}(name string) ({{.Name}}, error) {
	return glenum.Parse[{{.Name}}]("{{$.API}}", "{{.Name}}", name)
}

func (v {{.Name}}) MarshalText() ([]byte, error) {
	return glenum.MarshalText(v)
}

func (v *{{.Name}}) UnmarshalText(text []byte) error {
	p, err := Parse{{.Name}}(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
{{end -}}
`

const namesTmpl = header + `
//go:build !{{.NamesTag}}

package {{.Package}}

import "{{.Import}}"
{{range .Types}}
func (v {{.Name}}) EnumValueName() string {
	switch v {
{{- range .Unique}}
	case {{.Ident}}:
		return "{{.Const}}"
{{- end}}
	}
	return ""
}
{{end}}
func init() {
{{- range .Types}}
	glenum.Register(glenum.TypeInfo{
		API:      "{{$.API}}",
		Prefix:   Prefix,
		Type:     "{{.Name}}",
		Bitfield: {{.Bitfield}},
		Entries: []glenum.Entry{
{{- range .Members}}
			{Name: "{{.Const}}", Value: {{.Const}}},
{{- end}}
		},
	})
{{- end}}
}
`

const namesStubTmpl = header + `
//go:build {{.NamesTag}}

package {{.Package}}
{{range .Types}}
func ({{.Name}}) EnumValueName() string {
	return ""
}
{{end -}}
`

const rangesTmpl = header + `
//go:build !{{.RangesTag}}

package {{.Package}}

import "{{.Import}}"
{{range .Types}}
var {{.Var}} = [...]glenum.Enum{
{{- range .Unique}}
	{{.Const}},
{{- end}}
}

func ({{.Name}}) EnumValueRange() []glenum.Enum {
	return append([]glenum.Enum(nil), {{.Var}}[:]...)
}
{{end -}}
`

const rangesStubTmpl = header + `
//go:build {{.RangesTag}}

package {{.Package}}

import "{{.Import}}"
{{range .Types}}
func ({{.Name}}) EnumValueRange() []glenum.Enum {
	return nil
}
{{end -}}
`

var templates = template.Must(template.New("glenumgen").Funcs(template.FuncMap{
	"hex": hex,
}).Parse(`{{define "enums.go"}}` + enumsTmpl + `{{end}}` +
	`{{define "enum_names.go"}}` + namesTmpl + `{{end}}` +
	`{{define "enum_names_stub.go"}}` + namesStubTmpl + `{{end}}` +
	`{{define "enum_ranges.go"}}` + rangesTmpl + `{{end}}` +
	`{{define "enum_ranges_stub.go"}}` + rangesStubTmpl + `{{end}}`))

// outputs lists the generated files in the order they are written.
var outputs = []string{
	"enums.go",
	"enum_names.go",
	"enum_names_stub.go",
	"enum_ranges.go",
	"enum_ranges_stub.go",
}
