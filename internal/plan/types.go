package plan

import (
	"errors"

	"fieldname-generator/internal/diagnostic"
	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

var ErrNothingToGenerate = errors.New("no records requested, annotated or configured")

// Accessor method names generated on every record. A record field may not
// share one of these names.
const (
	MethodField    = "Field"
	MethodFieldMut = "FieldMut"
	MethodFields   = "Fields"
)

// Plan is the output of the resolution pipeline for one package.
type Plan struct {
	// Package is the package the records are declared in. Generated code
	// lives in the same package.
	Package PackageRef
	// Records in resolution order.
	Records []*RecordPlan
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// PackageRef identifies the target package of a plan.
type PackageRef struct {
	Path string
	Name string
	Dir  string
}

// RecordPlan is the resolved generation input for a single record.
type RecordPlan struct {
	Record *schema.Record
	Set    *variant.Set
	// Output is the generated file name, relative to the package directory.
	Output string
}

// NamesVar returns the name of the generated field-name array.
func (rp *RecordPlan) NamesVar() string {
	return rp.Set.Shared.Name + "Names"
}

// Record returns the plan for the named record.
func (p *Plan) Record(name string) (*RecordPlan, bool) {
	for _, rp := range p.Records {
		if rp.Record.Name == name {
			return rp, true
		}
	}

	return nil, false
}
