package analyze

import (
	"fmt"
	"go/ast"
	"strings"

	"fieldname-generator/canonical"
	"fieldname-generator/schema"
)

// DirectivePrefix starts a record-level customization comment:
//
//	//fieldname:enum name=UserValue capabilities=stringer,equal capabilities_mut=stringer
const DirectivePrefix = "//fieldname:"

// ParseDirective parses a single directive line into record options.
func ParseDirective(line string) (schema.Options, error) {
	var opts schema.Options

	words := strings.Fields(strings.TrimPrefix(line, DirectivePrefix))
	if len(words) == 0 || words[0] != "enum" {
		return opts, fmt.Errorf("%w: %q: expected \"enum\"", ErrBadDirective, line)
	}

	for _, word := range words[1:] {
		key, value, ok := strings.Cut(word, "=")
		if !ok {
			return opts, fmt.Errorf("%w: %q: expected key=value", ErrBadDirective, word)
		}

		switch key {
		case "name":
			if !canonical.IsIdentifier(value) {
				return opts, fmt.Errorf("%w: invalid enum name %q", ErrBadDirective, value)
			}
			opts.EnumName = value
		case "capabilities":
			opts.Capabilities = splitList(value)
		case "capabilities_mut":
			opts.CapabilitiesMut = splitList(value)
		case "capabilities_all":
			opts.CapabilitiesAll = splitList(value)
		default:
			return opts, fmt.Errorf("%w: unknown option %q", ErrBadDirective, key)
		}
	}

	return opts, nil
}

func directiveOptions(doc *ast.CommentGroup) (schema.Options, error) {
	var opts schema.Options
	if doc == nil {
		return opts, nil
	}

	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, DirectivePrefix) {
			continue
		}

		o, err := ParseDirective(c.Text)
		if err != nil {
			return schema.Options{}, err
		}

		opts = opts.Merge(o)
	}

	return opts, nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, DirectivePrefix) {
			return true
		}
	}

	return false
}

// splitList splits a comma-separated list. An empty value is an explicit
// empty list.
func splitList(value string) []string {
	out := []string{}

	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
