package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"sort"

	"fieldname-generator/internal/common"
	"fieldname-generator/internal/plan"
	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

// ToolName appears in the header of every generated file.
const ToolName = "fieldname-gen"

var ErrInvalidPlan = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugDir receives a *.unformatted.go sidecar when the generated source
	// fails to format. Empty disables it.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "teststruct_fieldname.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per record of the plan. A plan carrying error
// diagnostics is rejected and nothing is generated.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if !p.Diagnostics.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, p.Diagnostics.Error())
	}

	files := make([]GeneratedFile, 0, len(p.Records))

	for _, rp := range p.Records {
		file, err := g.GenerateRecord(p.Package.Name, rp)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", rp.Record.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateRecord generates the accessor file for a single record.
func (g *Generator) GenerateRecord(pkgName string, rp *plan.RecordPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkgName, rp)

	var buf bytes.Buffer
	if err := fieldsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, rp.Output, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: rp.Output,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	g.logger.Debug("generated record",
		"record", rp.Record.Name,
		"file", rp.Output,
		"bytes", len(formatted))

	return &GeneratedFile{
		Filename: rp.Output,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data from a resolved record.
func (g *Generator) buildTemplateData(pkgName string, rp *plan.RecordPlan) *templateData {
	rec := rp.Record

	data := &templateData{
		Tool:        ToolName,
		PackageName: pkgName,
		Comments:    g.config.GenerateComments,
		Record:      rec.Name,
		TypeParams:  rec.TypeParamsDecl(),
		TypeArgs:    rec.TypeArgs(),
		NamesVar:    rp.NamesVar(),
		Shared:      buildUnion(rp.Set.Shared, rp),
		Exclusive:   buildUnion(rp.Set.Exclusive, rp),
	}

	for _, f := range rec.Fields {
		c, _ := rp.Set.CaseOf(f.Name)
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			Case:    rp.Set.Shared.CaseName(c),
			MutCase: rp.Set.Exclusive.CaseName(c),
		})
	}

	data.Imports = g.collectImports(data, rp)

	return data
}

func buildUnion(u *variant.Union, rp *plan.RecordPlan) unionData {
	ud := unionData{
		Name:       u.Name,
		Marker:     "is" + u.Name,
		Stringer:   u.Has(variant.CapabilityStringer),
		GoStringer: u.Has(variant.CapabilityGoStringer),
		Equal:      u.Has(variant.CapabilityEqual),
		Clone:      u.Has(variant.CapabilityClone),
	}

	for _, c := range u.Cases {
		ud.Cases = append(ud.Cases, caseData{
			Name:   u.CaseName(c),
			Tag:    c.Tag,
			Type:   c.Representative,
			Fields: c.Fields,
		})
	}

	return ud
}

// collectImports returns the imports of the generated file: the standard
// packages the capabilities need plus the packages the case payload types and
// type parameter constraints refer to. Standard packages come first, then the
// rest, each group sorted by path.
func (g *Generator) collectImports(data *templateData, rp *plan.RecordPlan) [][]importSpec {
	imports := map[string]importSpec{
		"iter": {Path: "iter"},
	}

	if data.Shared.Stringer || data.Shared.GoStringer || data.Exclusive.Stringer || data.Exclusive.GoStringer {
		imports["fmt"] = importSpec{Path: "fmt"}
	}

	if data.Shared.Equal || data.Exclusive.Equal {
		imports["reflect"] = importSpec{Path: "reflect"}
	}

	add := func(refs []schema.Import) {
		for _, imp := range refs {
			spec := importSpec{Path: imp.Path}
			if imp.Name != common.PkgAlias(imp.Path) {
				spec.Alias = imp.Name
			}

			imports[imp.Path] = spec
		}
	}

	// Constraints are repeated on every generated declaration.
	for _, tp := range rp.Record.TypeParams {
		add(tp.Imports)
	}

	// Only representatives appear in generated declarations.
	for _, c := range rp.Set.Shared.Cases {
		name, ok := common.First(c.Fields)
		if !ok {
			continue
		}

		f, _ := rp.Record.Field(name)
		add(f.Imports)
	}

	var std, other []importSpec
	for _, imp := range imports {
		if common.IsStdlib(imp.Path, rp.Record.PkgPath) {
			std = append(std, imp)
		} else {
			other = append(other, imp)
		}
	}

	var groups [][]importSpec
	for _, group := range [][]importSpec{std, other} {
		if common.IsEmpty(group) {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Path < group[j].Path
		})
		groups = append(groups, group)
	}

	return groups
}
