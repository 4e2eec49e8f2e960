package schema

// Options is the record-level customization.
//
// A nil capability list means "not specified"; an empty non-nil list is an
// explicit empty set. CapabilitiesAll, when specified, replaces both
// Capabilities and CapabilitiesMut.
type Options struct {
	EnumName        string
	Capabilities    []string
	CapabilitiesMut []string
	CapabilitiesAll []string
	// FieldTags maps field names to explicit tags. Entries override any tag
	// found on the field declaration itself.
	FieldTags map[string]string
}

// UnionNames returns the names of the shared and exclusive unions for a
// record. The exclusive name is always the shared name suffixed with "Mut".
func (o Options) UnionNames(record string) (shared, exclusive string) {
	shared = o.EnumName
	if shared == "" {
		shared = record + "Field"
	}

	return shared, shared + "Mut"
}

// CapabilitySets returns the capability names attached to the shared and
// exclusive unions.
func (o Options) CapabilitySets() (shared, exclusive []string) {
	if o.CapabilitiesAll != nil {
		return clone(o.CapabilitiesAll), clone(o.CapabilitiesAll)
	}

	return clone(o.Capabilities), clone(o.CapabilitiesMut)
}

// Merge overlays the non-empty settings of other onto o and returns the
// result. Field tags are merged per field.
func (o Options) Merge(other Options) Options {
	out := o
	out.FieldTags = make(map[string]string, len(o.FieldTags)+len(other.FieldTags))

	for k, v := range o.FieldTags {
		out.FieldTags[k] = v
	}

	for k, v := range other.FieldTags {
		out.FieldTags[k] = v
	}

	if other.EnumName != "" {
		out.EnumName = other.EnumName
	}

	if other.Capabilities != nil {
		out.Capabilities = clone(other.Capabilities)
	}

	if other.CapabilitiesMut != nil {
		out.CapabilitiesMut = clone(other.CapabilitiesMut)
	}

	if other.CapabilitiesAll != nil {
		out.CapabilitiesAll = clone(other.CapabilitiesAll)
	}

	return out
}

// Option customizes run-time extraction.
type Option func(*Options)

// WithEnumName overrides the shared union name.
func WithEnumName(name string) Option {
	return func(o *Options) { o.EnumName = name }
}

// WithCapabilities attaches capabilities to the shared union.
func WithCapabilities(caps ...string) Option {
	return func(o *Options) { o.Capabilities = append([]string{}, caps...) }
}

// WithCapabilitiesMut attaches capabilities to the exclusive union.
func WithCapabilitiesMut(caps ...string) Option {
	return func(o *Options) { o.CapabilitiesMut = append([]string{}, caps...) }
}

// WithCapabilitiesAll attaches the same capabilities to both unions.
func WithCapabilitiesAll(caps ...string) Option {
	return func(o *Options) { o.CapabilitiesAll = append([]string{}, caps...) }
}

// WithFieldTag sets an explicit tag for one field.
func WithFieldTag(field, tag string) Option {
	return func(o *Options) {
		if o.FieldTags == nil {
			o.FieldTags = make(map[string]string)
		}
		o.FieldTags[field] = tag
	}
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}

	return append([]string{}, s...)
}
