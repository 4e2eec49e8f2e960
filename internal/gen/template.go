package gen

import (
	"strings"
	"text/template"
)

// templateData holds all data needed for the fields template.
type templateData struct {
	Tool        string
	PackageName string
	Imports     [][]importSpec // standard library first
	Comments    bool

	Record     string
	TypeParams string // "[K comparable, V any]", empty unless generic
	TypeArgs   string // "[K, V]", empty unless generic
	NamesVar   string

	Shared    unionData
	Exclusive unionData
	Fields    []fieldData
}

type importSpec struct {
	Alias string
	Path  string
}

type unionData struct {
	Name   string
	Marker string // unexported method sealing the interface
	Cases  []caseData

	Stringer   bool
	GoStringer bool
	Equal      bool
	Clone      bool
}

type caseData struct {
	Name   string
	Tag    string
	Type   string
	Fields []string
}

type fieldData struct {
	Name    string
	Case    string
	MutCase string
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

var fieldsTemplate = template.Must(template.New("fields").Funcs(templateFuncs).Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range $i, $group := .Imports}}{{if $i}}
{{end}}{{range $group}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}}{{end}})
{{with .Shared}}
{{if $.Comments}}// {{.Name}} is a shared view of one field of {{$.Record}}.
{{end}}type {{.Name}}{{$.TypeParams}} interface {
	{{.Marker}}()
}
{{range .Cases}}
{{if $.Comments}}// {{.Name}} views the {{.Type}} fields {{join .Fields ", "}}.
{{end}}type {{.Name}}{{$.TypeParams}} struct {
	v *{{.Type}}
}

func ({{.Name}}{{$.TypeArgs}}) {{$.Shared.Marker}}() {}

{{if $.Comments}}// Value returns the field value.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Value() {{.Type}} {
	return *f.v
}
{{if $.Shared.Stringer}}
func (f {{.Name}}{{$.TypeArgs}}) String() string {
	return fmt.Sprintf("{{.Tag}}(%v)", *f.v)
}
{{end}}{{if $.Shared.GoStringer}}
func (f {{.Name}}{{$.TypeArgs}}) GoString() string {
	return fmt.Sprintf("{{$.Shared.Name}}.{{.Tag}}(%#v)", *f.v)
}
{{end}}{{if $.Shared.Equal}}
{{if $.Comments}}// Equal reports whether o is the same case holding an equal value.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Equal(o {{$.Shared.Name}}{{$.TypeArgs}}) bool {
	g, ok := o.({{.Name}}{{$.TypeArgs}})
	return ok && reflect.DeepEqual(*f.v, *g.v)
}
{{end}}{{if $.Shared.Clone}}
{{if $.Comments}}// Clone returns another view of the same field.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Clone() {{.Name}}{{$.TypeArgs}} {
	return {{.Name}}{{$.TypeArgs}}{v: f.v}
}
{{end}}{{end}}{{end}}{{with .Exclusive}}
{{if $.Comments}}// {{.Name}} is an exclusive view of one field of {{$.Record}}.
{{end}}type {{.Name}}{{$.TypeParams}} interface {
	{{.Marker}}()
}
{{range .Cases}}
{{if $.Comments}}// {{.Name}} gives mutable access to the {{.Type}} fields {{join .Fields ", "}}.
{{end}}type {{.Name}}{{$.TypeParams}} struct {
	p *{{.Type}}
}

func ({{.Name}}{{$.TypeArgs}}) {{$.Exclusive.Marker}}() {}

{{if $.Comments}}// Value returns the field value.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Value() {{.Type}} {
	return *f.p
}

{{if $.Comments}}// Ptr returns a pointer to the field.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Ptr() *{{.Type}} {
	return f.p
}

{{if $.Comments}}// Set replaces the field value.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Set(v {{.Type}}) {
	*f.p = v
}
{{if $.Exclusive.Stringer}}
func (f {{.Name}}{{$.TypeArgs}}) String() string {
	return fmt.Sprintf("{{.Tag}}(%v)", *f.p)
}
{{end}}{{if $.Exclusive.GoStringer}}
func (f {{.Name}}{{$.TypeArgs}}) GoString() string {
	return fmt.Sprintf("{{$.Exclusive.Name}}.{{.Tag}}(%#v)", *f.p)
}
{{end}}{{if $.Exclusive.Equal}}
{{if $.Comments}}// Equal reports whether o is the same case holding an equal value.
{{end}}func (f {{.Name}}{{$.TypeArgs}}) Equal(o {{$.Exclusive.Name}}{{$.TypeArgs}}) bool {
	g, ok := o.({{.Name}}{{$.TypeArgs}})
	return ok && reflect.DeepEqual(*f.p, *g.p)
}
{{end}}{{end}}{{end}}
{{if .Comments}}// {{.NamesVar}} lists the field names of {{.Record}} in declaration order.
{{end}}var {{.NamesVar}} = [...]string{
{{range .Fields}}	{{printf "%q" .Name}},
{{end}}}

{{if .Comments}}// Field returns a shared view of the named field.
{{end}}func (r *{{.Record}}{{.TypeArgs}}) Field(name string) ({{.Shared.Name}}{{.TypeArgs}}, bool) {
	switch name {
{{range .Fields}}	case {{printf "%q" .Name}}:
		return {{.Case}}{{$.TypeArgs}}{v: &r.{{.Name}}}, true
{{end}}	default:
		return nil, false
	}
}

{{if .Comments}}// FieldMut returns an exclusive view of the named field.
{{end}}func (r *{{.Record}}{{.TypeArgs}}) FieldMut(name string) ({{.Exclusive.Name}}{{.TypeArgs}}, bool) {
	switch name {
{{range .Fields}}	case {{printf "%q" .Name}}:
		return {{.MutCase}}{{$.TypeArgs}}{p: &r.{{.Name}}}, true
{{end}}	default:
		return nil, false
	}
}

{{if .Comments}}// Fields iterates over shared views of all fields in declaration order.
{{end}}func (r *{{.Record}}{{.TypeArgs}}) Fields() iter.Seq2[string, {{.Shared.Name}}{{.TypeArgs}}] {
	return func(yield func(string, {{.Shared.Name}}{{.TypeArgs}}) bool) {
		for _, name := range {{.NamesVar}} {
			f, _ := r.Field(name)
			if !yield(name, f) {
				return
			}
		}
	}
}
`))
