package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldname-generator/variant"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
records:
  - type: TestStruct
    enum_name: TestField
    capabilities: [stringer, equal]
    capabilities_mut: [stringer]
    fields:
      Age: Years
  - type: Ages
    capabilities_all: []
    output: ages_fields.go
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"TestStruct", "Ages"}, f.Types())

	rc, ok := f.Record("TestStruct")
	require.True(t, ok)
	assert.Equal(t, "TestField", rc.EnumName)
	assert.Equal(t, []string{"stringer", "equal"}, rc.Capabilities)
	assert.Equal(t, []string{"stringer"}, rc.CapabilitiesMut)
	assert.Nil(t, rc.CapabilitiesAll)
	assert.Equal(t, map[string]string{"Age": "Years"}, rc.Fields)

	opts := rc.Options()
	assert.Equal(t, "TestField", opts.EnumName)
	assert.Equal(t, "Years", opts.FieldTags["Age"])

	// An explicit empty list is kept distinct from an omitted one.
	rc, ok = f.Record("Ages")
	require.True(t, ok)
	assert.NotNil(t, rc.CapabilitiesAll)
	assert.Empty(t, rc.CapabilitiesAll)
	assert.Equal(t, "ages_fields.go", rc.Output)
	assert.Nil(t, rc.Options().FieldTags)

	_, ok = f.Record("Missing")
	assert.False(t, ok)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(`records: [{type: A}]`))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
	assert.Empty(t, f.Records)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		msg     string
	}{
		{
			name:    "missing type",
			yaml:    "records: [{enum_name: X}]",
			wantErr: ErrMissingType,
		},
		{
			name:    "duplicate type",
			yaml:    "records: [{type: A}, {type: A}]",
			wantErr: ErrDuplicateType,
		},
		{
			name:    "enum name not an identifier",
			yaml:    "records: [{type: A, enum_name: my-enum}]",
			wantErr: ErrBadEnumName,
		},
		{
			name:    "unknown capability",
			yaml:    "records: [{type: A, capabilities_mut: [hash]}]",
			wantErr: variant.ErrUnknownCapability,
		},
		{
			name: "unknown key",
			yaml: "records: [{type: A, derive: [Debug]}]",
			msg:  "field derive not found",
		},
		{
			name: "malformed",
			yaml: "records: [",
			msg:  "failed to parse config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			assert.Nil(t, f)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestFile_NilSafe(t *testing.T) {
	var f *File

	_, ok := f.Record("A")
	assert.False(t, ok)
	assert.Nil(t, f.Types())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f := &File{
		Version: "1",
		Records: []RecordConfig{
			{
				Type:         "User",
				EnumName:     "UserValue",
				Capabilities: []string{"clone"},
				Fields:       map[string]string{"Age": "Years"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "fieldname.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "enum_name: UserValue")
	assert.NotContains(t, string(data), "capabilities_all")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
