package schema

import (
	"reflect"
	"strings"

	"fieldname-generator/canonical"
)

// TagKey is the struct tag key carrying a field-level tag override.
const TagKey = "fieldname"

// FieldDescriptor describes one named field of a record, in declaration order.
type FieldDescriptor struct {
	Name        string       // field name, matched case-sensitively at run time
	Signature   string       // declared type signature text
	ExplicitTag string       // field-level tag override, empty if none
	Index       int          // position in the struct declaration
	Type        reflect.Type // nil when extracted from source
	Imports     []Import     // packages the signature refers to, source extraction only
}

// Import is a package referenced by a field signature, under the local name
// the signature uses.
type Import struct {
	Name string
	Path string
}

// ResolvedTag returns the explicit tag if set, otherwise the canonical tag of
// the signature.
func (f *FieldDescriptor) ResolvedTag() string {
	if f.ExplicitTag != "" {
		return f.ExplicitTag
	}

	return canonical.Canonicalize(f.Signature)
}

// TypeParam is a type parameter of a generic record.
type TypeParam struct {
	Name       string
	Constraint string
	Imports    []Import // packages the constraint refers to, source extraction only
}

// Record is the extracted schema of one record type.
type Record struct {
	Name       string // bare type name, without type arguments
	PkgPath    string
	Exported   bool
	TypeParams []TypeParam
	Fields     []FieldDescriptor
	Options    Options
}

// Field returns the descriptor for the named field.
func (r *Record) Field(name string) (*FieldDescriptor, bool) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i], true
		}
	}

	return nil, false
}

// FieldNames returns the field names in declaration order.
func (r *Record) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	return names
}

// IsGeneric reports whether the record declares type parameters.
func (r *Record) IsGeneric() bool {
	return len(r.TypeParams) > 0
}

// TypeParamsDecl renders the type parameter list for a declaration,
// e.g. "[K comparable, V any]". It is empty for non-generic records.
func (r *Record) TypeParamsDecl() string {
	if !r.IsGeneric() {
		return ""
	}

	parts := make([]string, len(r.TypeParams))
	for i, p := range r.TypeParams {
		parts[i] = p.Name + " " + p.Constraint
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// TypeArgs renders the type argument list for an instantiation, e.g. "[K, V]".
func (r *Record) TypeArgs() string {
	if !r.IsGeneric() {
		return ""
	}

	parts := make([]string, len(r.TypeParams))
	for i, p := range r.TypeParams {
		parts[i] = p.Name
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Validate checks the invariants every extractor must uphold: at least one
// field, unique field names, and a usable tag for every field. Explicit tags
// must be identifiers; canonical tags only need to be non-empty, since they
// are always suffixed to a union name. Field-level overrides from Options are
// applied first.
func (r *Record) Validate() error {
	if len(r.Fields) == 0 {
		return shapeErr(r.Name, "", ErrNoFields)
	}

	if err := r.applyFieldTags(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(r.Fields))
	for _, f := range r.Fields {
		if _, dup := seen[f.Name]; dup {
			return shapeErr(r.Name, f.Name, ErrDuplicateField)
		}
		seen[f.Name] = struct{}{}

		if !validTag(&f) {
			return shapeErr(r.Name, f.Name, ErrInvalidTag)
		}
	}

	return nil
}

func validTag(f *FieldDescriptor) bool {
	if f.ExplicitTag != "" {
		return canonical.IsIdentifier(f.ExplicitTag)
	}

	return f.ResolvedTag() != ""
}

func (r *Record) applyFieldTags() error {
	for name, tag := range r.Options.FieldTags {
		f, ok := r.Field(name)
		if !ok {
			return shapeErr(r.Name, name, ErrUnknownOverride)
		}

		f.ExplicitTag = tag
	}

	return nil
}
