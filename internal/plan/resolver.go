package plan

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"fieldname-generator/canonical"
	"fieldname-generator/internal/analyze"
	"fieldname-generator/internal/common"
	"fieldname-generator/internal/config"
	"fieldname-generator/internal/diagnostic"
	"fieldname-generator/internal/match"
	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

// Diagnostic codes.
const (
	CodeExplicitTag    = "explicit-tag"
	CodeTagCollision   = "tag-collision"
	CodeNameClash      = "name-clash"
	CodeMethodClash    = "method-clash"
	CodeCapsOverridden = "capabilities-overridden"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// StrictMode reports warnings as errors.
	StrictMode bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	file   *config.File
	config ResolutionConfig
	logger *slog.Logger
}

// NewResolver creates a new Resolver. file may be nil.
func NewResolver(file *config.File, cfg ResolutionConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{file: file, config: cfg, logger: logger}
}

// Resolve builds a plan for the named records of pkg. Without names it plans
// every record carrying a //fieldname: directive or a configuration entry.
//
// Shape errors abort resolution and no plan is returned. Problems the
// generator cannot express are reported as diagnostics on the plan.
func (r *Resolver) Resolve(pkg *analyze.PackageInfo, typeNames ...string) (*Plan, error) {
	if common.IsEmpty(typeNames) {
		typeNames = r.defaultTypes(pkg)
	}

	if common.IsEmpty(typeNames) {
		return nil, fmt.Errorf("%s: %w", pkg.Path, ErrNothingToGenerate)
	}

	p := &Plan{
		Package: PackageRef{Path: pkg.Path, Name: pkg.Name, Dir: pkg.Dir},
	}

	for _, name := range typeNames {
		if _, dup := p.Record(name); dup {
			continue
		}

		rec, err := pkg.Record(name)
		if errors.Is(err, analyze.ErrTypeNotFound) {
			return nil, fmt.Errorf("%w%s", err, match.Hint(name, pkg.Structs()))
		}

		if err != nil {
			return nil, err
		}

		rp, err := r.ResolveRecord(rec, &p.Diagnostics)
		if err != nil {
			return nil, err
		}

		p.Records = append(p.Records, rp)
	}

	r.logger.Debug("resolved plan",
		"package", p.Package.Path,
		"records", len(p.Records),
		"errors", len(p.Diagnostics.Errors),
		"warnings", len(p.Diagnostics.Warnings))

	return p, nil
}

// ResolveRecord merges configuration into rec, synthesizes its unions and
// appends diagnostics to diags.
func (r *Resolver) ResolveRecord(rec *schema.Record, diags *diagnostic.Diagnostics) (*RecordPlan, error) {
	output := DefaultOutput(rec.Name)

	if rc, ok := r.file.Record(rec.Name); ok {
		rec.Options = rec.Options.Merge(rc.Options())
		if err := rec.Validate(); err != nil {
			var shape *schema.ShapeError
			if errors.As(err, &shape) && errors.Is(err, schema.ErrUnknownOverride) {
				return nil, fmt.Errorf("applying config: %w%s", err, match.Hint(shape.Field, rec.FieldNames()))
			}

			return nil, fmt.Errorf("applying config: %w", err)
		}

		if rc.Output != "" {
			output = rc.Output
		}
	}

	set, err := variant.Synthesize(rec)
	if err != nil {
		return nil, err
	}

	rp := &RecordPlan{Record: rec, Set: set, Output: output}
	r.diagnose(rp, diags)

	r.logger.Debug("resolved record",
		"record", rec.Name,
		"fields", len(rec.Fields),
		"cases", len(set.Shared.Cases),
		"union", set.Shared.Name)

	return rp, nil
}

func (r *Resolver) diagnose(rp *RecordPlan, diags *diagnostic.Diagnostics) {
	rec := rp.Record
	warn := diags.AddWarning
	if r.config.StrictMode {
		warn = diags.AddError
	}

	for _, f := range rec.Fields {
		if f.ExplicitTag != "" {
			diags.AddInfo(CodeExplicitTag,
				fmt.Sprintf("tag %s set explicitly (canonical tag is %s)", f.ExplicitTag, canonical.Canonicalize(f.Signature)),
				rec.Name, f.Name)
		}

		if slices.Contains([]string{MethodField, MethodFieldMut, MethodFields}, f.Name) {
			diags.AddError(CodeMethodClash,
				fmt.Sprintf("field %s collides with the generated %s method", f.Name, f.Name),
				rec.Name, f.Name)
		}
	}

	// A case holds one Go type, so merged fields must agree on it.
	for _, c := range rp.Set.Collisions() {
		diags.Errors = append(diags.Errors, diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     CodeTagCollision,
			Message: fmt.Sprintf("fields %s share tag %s but have types %s",
				strings.Join(c.Fields, ", "), c.Tag, strings.Join(c.Signatures, ", ")),
			Record:      rec.Name,
			Suggestions: []string{fmt.Sprintf("set a distinct tag with `%s:\"...\"` on one of the fields", schema.TagKey)},
		})
	}

	for _, name := range identifierClashes(rp) {
		diags.AddError(CodeNameClash,
			fmt.Sprintf("generated identifier %s is declared twice", name),
			rec.Name, "")
	}

	o := rec.Options
	if o.CapabilitiesAll != nil && (o.Capabilities != nil || o.CapabilitiesMut != nil) {
		warn(CodeCapsOverridden,
			"capabilities_all replaces capabilities and capabilities_mut",
			rec.Name, "")
	}
}

// identifierClashes returns generated top-level identifiers that would be
// declared more than once, or that redeclare the record type itself, sorted.
func identifierClashes(rp *RecordPlan) []string {
	shared, exclusive := rp.Set.Shared, rp.Set.Exclusive

	names := []string{rp.Record.Name, shared.Name, exclusive.Name, rp.NamesVar()}
	for _, c := range shared.Cases {
		names = append(names, shared.CaseName(c), exclusive.CaseName(c))
	}

	seen := make(map[string]int, len(names))
	for _, n := range names {
		seen[n]++
	}

	var out []string
	for n, count := range seen {
		if count > 1 {
			out = append(out, n)
		}
	}

	sort.Strings(out)

	return out
}

// DefaultOutput returns the generated file name for a record.
func DefaultOutput(record string) string {
	return strings.ToLower(record) + "_fieldname.go"
}

func (r *Resolver) defaultTypes(pkg *analyze.PackageInfo) []string {
	names := pkg.Annotated()
	for _, name := range r.file.Types() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}
