package plan

import (
	"gopkg.in/yaml.v3"

	"fieldname-generator/internal/config"
	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

// RecordView is the YAML rendering of a resolved record used by inspect.
type RecordView struct {
	Type        string         `yaml:"type"`
	Output      string         `yaml:"output"`
	Fields      []FieldView    `yaml:"fields"`
	Shared      *variant.Union `yaml:"shared"`
	Exclusive   *variant.Union `yaml:"exclusive"`
	Diagnostics []string       `yaml:"diagnostics,omitempty"`
}

// FieldView is one row of the field name to tag table.
type FieldView struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Tag      string `yaml:"tag"`
	Explicit bool   `yaml:"explicit,omitempty"`
}

// View renders the plan as one RecordView per record.
func View(p *Plan) []RecordView {
	views := make([]RecordView, 0, len(p.Records))

	for _, rp := range p.Records {
		rv := RecordView{
			Type:      rp.Record.Name + rp.Record.TypeParamsDecl(),
			Output:    rp.Output,
			Shared:    rp.Set.Shared,
			Exclusive: rp.Set.Exclusive,
		}

		for _, f := range rp.Record.Fields {
			rv.Fields = append(rv.Fields, FieldView{
				Name:     f.Name,
				Type:     f.Signature,
				Tag:      f.ResolvedTag(),
				Explicit: f.ExplicitTag != "",
			})
		}

		for _, d := range p.Diagnostics.All() {
			if d.Record == rp.Record.Name {
				rv.Diagnostics = append(rv.Diagnostics, d.Severity.String()+": "+d.String())
			}
		}

		views = append(views, rv)
	}

	return views
}

// ExportYAML renders the plan view as YAML.
func ExportYAML(p *Plan) ([]byte, error) {
	return yaml.Marshal(View(p))
}

// ExportConfig generates a configuration file reproducing the resolved
// settings of every record, so directives can be moved into YAML.
func ExportConfig(p *Plan) *config.File {
	f := &config.File{Version: "1"}

	for _, rp := range p.Records {
		rec := rp.Record
		rc := config.RecordConfig{Type: rec.Name}

		if defaultName, _ := (schema.Options{}).UnionNames(rec.Name); rp.Set.Shared.Name != defaultName {
			rc.EnumName = rp.Set.Shared.Name
		}

		rc.Capabilities = capabilityNames(rp.Set.Shared.Capabilities)
		rc.CapabilitiesMut = capabilityNames(rp.Set.Exclusive.Capabilities)

		for _, fd := range rec.Fields {
			if fd.ExplicitTag == "" {
				continue
			}

			if rc.Fields == nil {
				rc.Fields = make(map[string]string)
			}
			rc.Fields[fd.Name] = fd.ExplicitTag
		}

		if rp.Output != DefaultOutput(rec.Name) {
			rc.Output = rp.Output
		}

		f.Records = append(f.Records, rc)
	}

	return f
}

// ExportConfigYAML generates the configuration file as YAML.
func ExportConfigYAML(p *Plan) ([]byte, error) {
	return config.Marshal(ExportConfig(p))
}

func capabilityNames(caps []variant.Capability) []string {
	if len(caps) == 0 {
		return nil
	}

	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.String()
	}

	return names
}
