package schema

import (
	"go/token"
	"reflect"
	"strings"
)

// Extract builds the Record of a struct type from its reflect.Type.
//
// Pointer types are dereferenced once. Unexported fields are skipped since
// reflection cannot hand out views of them; embedded fields are rejected.
// The field signature is reflect.Type.String().
func Extract(t reflect.Type, opts ...Option) (*Record, error) {
	if t == nil {
		return nil, shapeErr("", "", ErrNotStruct)
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := baseName(t.Name())
	if t.Kind() != reflect.Struct {
		return nil, shapeErr(name, "", ErrNotStruct)
	}

	rec := &Record{
		Name:     name,
		PkgPath:  t.PkgPath(),
		Exported: token.IsExported(name),
	}

	for _, opt := range opts {
		opt(&rec.Options)
	}

	for i := range t.NumField() {
		sf := t.Field(i)

		if sf.Anonymous {
			return nil, shapeErr(name, sf.Name, ErrUnnamedField)
		}

		if !sf.IsExported() {
			continue
		}

		rec.Fields = append(rec.Fields, FieldDescriptor{
			Name:        sf.Name,
			Signature:   sf.Type.String(),
			ExplicitTag: strings.TrimSpace(sf.Tag.Get(TagKey)),
			Index:       i,
			Type:        sf.Type,
		})
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// baseName strips type arguments from an instantiated generic type name,
// "Box[int]" -> "Box".
func baseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}
