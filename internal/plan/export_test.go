package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fieldname-generator/internal/config"
)

func TestView(t *testing.T) {
	p := resolve(t, nil, "Ages", "Pair")

	views := View(p)
	require.Len(t, views, 2)

	ages := views[0]
	assert.Equal(t, "Ages", ages.Type)
	assert.Equal(t, "ages_fieldname.go", ages.Output)
	assert.Equal(t, []FieldView{
		{Name: "DogAge", Type: "int64", Tag: "Int64"},
		{Name: "CatAge", Type: "int64", Tag: "Int64"},
		{Name: "Age", Type: "int64", Tag: "AmazingAge", Explicit: true},
	}, ages.Fields)
	assert.Len(t, ages.Diagnostics, 1)
	assert.Contains(t, ages.Diagnostics[0], "info: [Ages] Age: [explicit-tag]")

	assert.Equal(t, "Pair[K comparable, V any]", views[1].Type)
	assert.Empty(t, views[1].Diagnostics)
}

func TestExportYAML(t *testing.T) {
	data, err := ExportYAML(resolve(t, nil, "Named"))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "type: Named")
	assert.Contains(t, out, "name: NamedValue")
	assert.Contains(t, out, "name: NamedValueMut")
	assert.Contains(t, out, "tag: String")
	assert.Contains(t, out, "- clone")
	assert.NotContains(t, out, "ownership")

	var back []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Len(t, back, 1)
}

func TestExportConfig(t *testing.T) {
	p := resolve(t, nil, "Named", "Ages", "TestStruct")

	f := ExportConfig(p)
	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Records, 3)

	assert.Equal(t, config.RecordConfig{
		Type:            "Named",
		EnumName:        "NamedValue",
		Capabilities:    []string{"stringer", "clone"},
		CapabilitiesMut: []string{"stringer"},
	}, f.Records[0])

	assert.Equal(t, config.RecordConfig{
		Type:   "Ages",
		Fields: map[string]string{"Age": "AmazingAge"},
	}, f.Records[1])

	assert.Equal(t, config.RecordConfig{Type: "TestStruct"}, f.Records[2])
}

func TestExportConfigYAML_RoundTrip(t *testing.T) {
	p := resolve(t, nil, "Everything")

	data, err := ExportConfigYAML(p)
	require.NoError(t, err)

	f, err := config.Parse(data)
	require.NoError(t, err)

	// Replaying the exported file reproduces the plan without directives.
	rc, ok := f.Record("Everything")
	require.True(t, ok)
	assert.Equal(t, []string{"gostringer", "equal"}, rc.Capabilities)
	assert.Equal(t, []string{"gostringer", "equal"}, rc.CapabilitiesMut)
	assert.Equal(t, map[string]string{"Count": "Total"}, rc.Fields)
}
