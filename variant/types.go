package variant

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"fieldname-generator/internal/common"
)

var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrCloneExclusive    = errors.New("clone cannot be attached to an exclusive union")
)

// Ownership is the borrow mode of a union's case payloads.
type Ownership int

const (
	Shared Ownership = iota
	Exclusive
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return common.UnknownStr
	}
}

// Capability is a derivable behavior attached to the cases of a union.
type Capability int

const (
	_ Capability = iota

	CapabilityStringer   // String() on each case
	CapabilityGoStringer // GoString() on each case
	CapabilityEqual      // Equal(other) on each case
	CapabilityClone      // Clone() on each case, shared unions only
)

var capabilityNames = map[Capability]string{
	CapabilityStringer:   "stringer",
	CapabilityGoStringer: "gostringer",
	CapabilityEqual:      "equal",
	CapabilityClone:      "clone",
}

// String returns the configuration name of the capability.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}

	return common.UnknownStr
}

// MarshalYAML renders the capability by name.
func (c Capability) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML parses the capability from its name.
func (c *Capability) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCapability(value.Value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// ParseCapability parses a capability name. Matching is case-insensitive.
func ParseCapability(name string) (Capability, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range capabilityNames {
		if n == key {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
}

// Case is one distinct tag among a record's fields.
type Case struct {
	Tag            string       `yaml:"tag"`
	Representative string       `yaml:"type"`   // signature of the first field with this tag
	Type           reflect.Type `yaml:"-"`      // representative reflect.Type, nil for source records
	Fields         []string     `yaml:"fields"` // every field resolved to this tag, in declaration order
}

// Union is one generated tagged union.
type Union struct {
	Name         string       `yaml:"name"`
	Ownership    Ownership    `yaml:"-"`
	Cases        []*Case      `yaml:"cases"`
	Capabilities []Capability `yaml:"capabilities,omitempty"`
}

// Has reports whether the capability is attached to the union.
func (u *Union) Has(c Capability) bool {
	return slices.Contains(u.Capabilities, c)
}

// Case returns the case with the given tag.
func (u *Union) Case(tag string) (*Case, bool) {
	for _, c := range u.Cases {
		if c.Tag == tag {
			return c, true
		}
	}

	return nil, false
}

// CaseName returns the qualified name of a case, e.g. "UserFieldU8".
func (u *Union) CaseName(c *Case) string {
	return u.Name + c.Tag
}
