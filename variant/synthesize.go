package variant

import (
	"fmt"
	"slices"

	"fieldname-generator/schema"
)

// Set is the synthesized output for one record: both unions over the same
// cases, and the field name to case table used by the accessors.
type Set struct {
	Record    *schema.Record
	Shared    *Union
	Exclusive *Union

	byField map[string]*Case
}

// Collision describes a case that merged fields with differing signatures.
type Collision struct {
	Tag        string
	Fields     []string
	Signatures []string
}

// Synthesize resolves the tag of every field, deduplicates by tag keeping the
// first occurrence as representative, and attaches the record's capabilities.
func Synthesize(rec *schema.Record) (*Set, error) {
	sharedCaps, exclusiveCaps, err := resolveCapabilities(rec.Options)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.Name, err)
	}

	var cases []*Case
	byTag := make(map[string]*Case)
	byField := make(map[string]*Case, len(rec.Fields))

	for i := range rec.Fields {
		f := &rec.Fields[i]
		tag := f.ResolvedTag()

		c, ok := byTag[tag]
		if !ok {
			c = &Case{Tag: tag, Representative: f.Signature, Type: f.Type}
			byTag[tag] = c
			cases = append(cases, c)
		}

		c.Fields = append(c.Fields, f.Name)
		byField[f.Name] = c
	}

	sharedName, exclusiveName := rec.Options.UnionNames(rec.Name)

	return &Set{
		Record: rec,
		Shared: &Union{
			Name:         sharedName,
			Ownership:    Shared,
			Cases:        cases,
			Capabilities: sharedCaps,
		},
		Exclusive: &Union{
			Name:         exclusiveName,
			Ownership:    Exclusive,
			Cases:        cases,
			Capabilities: exclusiveCaps,
		},
		byField: byField,
	}, nil
}

// CaseOf returns the case a field is dispatched to.
func (s *Set) CaseOf(field string) (*Case, bool) {
	c, ok := s.byField[field]
	return c, ok
}

// Union returns the union with the given ownership.
func (s *Set) Union(o Ownership) *Union {
	if o == Exclusive {
		return s.Exclusive
	}

	return s.Shared
}

// Collisions lists cases that merged fields whose signatures differ. Such
// merges are legal; the list only feeds diagnostics.
func (s *Set) Collisions() []Collision {
	var out []Collision

	for _, c := range s.Shared.Cases {
		var sigs []string
		seen := make(map[string]struct{})

		for _, name := range c.Fields {
			f, _ := s.Record.Field(name)
			if _, dup := seen[f.Signature]; dup {
				continue
			}
			seen[f.Signature] = struct{}{}
			sigs = append(sigs, f.Signature)
		}

		if len(sigs) > 1 {
			out = append(out, Collision{Tag: c.Tag, Fields: c.Fields, Signatures: sigs})
		}
	}

	return out
}

func resolveCapabilities(o schema.Options) (shared, exclusive []Capability, err error) {
	sharedNames, exclusiveNames := o.CapabilitySets()

	shared, err = parseCapabilities(sharedNames)
	if err != nil {
		return nil, nil, err
	}

	exclusive, err = parseCapabilities(exclusiveNames)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range exclusive {
		if c == CapabilityClone {
			return nil, nil, ErrCloneExclusive
		}
	}

	return shared, exclusive, nil
}

func parseCapabilities(names []string) ([]Capability, error) {
	var out []Capability

	for _, name := range names {
		c, err := ParseCapability(name)
		if err != nil {
			return nil, err
		}

		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out, nil
}
