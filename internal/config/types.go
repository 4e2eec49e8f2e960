package config

import (
	"errors"

	"fieldname-generator/schema"
)

var (
	ErrMissingType   = errors.New("record entry has no type")
	ErrDuplicateType = errors.New("record configured more than once")
	ErrBadEnumName   = errors.New("enum_name is not a Go identifier")
)

// File is the top-level structure of a configuration file.
type File struct {
	Version string         `yaml:"version"`
	Records []RecordConfig `yaml:"records,omitempty"`
}

// RecordConfig customizes one record. Capability lists follow the same
// convention as schema.Options: omitted means unspecified, an explicit
// empty list means none.
type RecordConfig struct {
	// Type is the record's type name within the loaded package.
	Type            string            `yaml:"type"`
	EnumName        string            `yaml:"enum_name,omitempty"`
	Capabilities    []string          `yaml:"capabilities,omitempty"`
	CapabilitiesMut []string          `yaml:"capabilities_mut,omitempty"`
	CapabilitiesAll []string          `yaml:"capabilities_all,omitempty"`
	// Fields maps field names to explicit tags.
	Fields map[string]string `yaml:"fields,omitempty"`
	// Output overrides the generated file name.
	Output string `yaml:"output,omitempty"`
}

// Options converts the entry to record options.
func (rc *RecordConfig) Options() schema.Options {
	opts := schema.Options{
		EnumName:        rc.EnumName,
		Capabilities:    rc.Capabilities,
		CapabilitiesMut: rc.CapabilitiesMut,
		CapabilitiesAll: rc.CapabilitiesAll,
	}

	if len(rc.Fields) > 0 {
		opts.FieldTags = make(map[string]string, len(rc.Fields))
		for k, v := range rc.Fields {
			opts.FieldTags[k] = v
		}
	}

	return opts
}

// Record returns the entry for the named type.
func (f *File) Record(name string) (*RecordConfig, bool) {
	if f == nil {
		return nil, false
	}

	for i := range f.Records {
		if f.Records[i].Type == name {
			return &f.Records[i], true
		}
	}

	return nil, false
}

// Types returns the configured type names in file order.
func (f *File) Types() []string {
	if f == nil {
		return nil
	}

	names := make([]string, len(f.Records))
	for i, rc := range f.Records {
		names[i] = rc.Type
	}

	return names
}
