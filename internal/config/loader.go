package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fieldname-generator/canonical"
	"fieldname-generator/variant"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document decodes to io.EOF and means "no settings".
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Validate checks that every entry names a type once, uses an identifier for
// enum_name and lists only known capabilities. Capability placement rules (clone on the exclusive union)
// are checked when the record is synthesized.
func Validate(f *File) error {
	seen := make(map[string]struct{}, len(f.Records))

	for i, rc := range f.Records {
		if rc.Type == "" {
			return fmt.Errorf("records[%d]: %w", i, ErrMissingType)
		}

		if _, dup := seen[rc.Type]; dup {
			return fmt.Errorf("records[%d] %s: %w", i, rc.Type, ErrDuplicateType)
		}
		seen[rc.Type] = struct{}{}

		if rc.EnumName != "" && !canonical.IsIdentifier(rc.EnumName) {
			return fmt.Errorf("records[%d] %s: %w: %q", i, rc.Type, ErrBadEnumName, rc.EnumName)
		}

		for _, list := range [][]string{rc.Capabilities, rc.CapabilitiesMut, rc.CapabilitiesAll} {
			for _, name := range list {
				if _, err := variant.ParseCapability(name); err != nil {
					return fmt.Errorf("records[%d] %s: %w", i, rc.Type, err)
				}
			}
		}
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
