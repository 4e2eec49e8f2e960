package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldname-generator/internal/analyze"
	"fieldname-generator/internal/plan"
	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

const recordsPkg = "fieldname-generator/examples/records"

func resolve(t *testing.T, names ...string) *plan.Plan {
	t.Helper()

	pkg, err := analyze.NewAnalyzer(nil).LoadPackage(recordsPkg)
	require.NoError(t, err)

	p, err := plan.NewResolver(nil, plan.DefaultConfig(), nil).Resolve(pkg, names...)
	require.NoError(t, err)

	return p
}

func generate(t *testing.T, name string) string {
	t.Helper()

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(resolve(t, name))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, content, parser.AllErrors)
	require.NoError(t, err, content)

	return content
}

func manualPlan(t *testing.T, rec *schema.Record) *plan.RecordPlan {
	t.Helper()

	set, err := variant.Synthesize(rec)
	require.NoError(t, err)

	return &plan.RecordPlan{Record: rec, Set: set, Output: plan.DefaultOutput(rec.Name)}
}

func TestGenerator_Generate_TestStruct(t *testing.T) {
	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(resolve(t, "TestStruct"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "teststruct_fieldname.go", files[0].Filename)

	content := string(files[0].Content)

	assert.True(t, strings.HasPrefix(content, "// Code generated by fieldname-gen. DO NOT EDIT.\n\npackage records\n"))
	assert.Contains(t, content, "import (\n\t\"iter\"\n\n\t\"fieldname-generator/examples/records/option\"\n)")
	assert.NotContains(t, content, "\"fmt\"")
	assert.NotContains(t, content, "\"reflect\"")

	// Shared union.
	assert.Contains(t, content, "type TestStructField interface {\n\tisTestStructField()\n}")
	assert.Contains(t, content, "type TestStructFieldString struct {\n\tv *string\n}")
	assert.Contains(t, content, "type TestStructFieldOptionImportantInfo struct {\n\tv *option.Option[ImportantInfo]\n}")
	assert.Contains(t, content, "func (TestStructFieldUint8) isTestStructField() {}")
	assert.Contains(t, content, "func (f TestStructFieldUint8) Value() uint8 {\n\treturn *f.v\n}")

	// Exclusive union.
	assert.Contains(t, content, "type TestStructFieldMut interface {\n\tisTestStructFieldMut()\n}")
	assert.Contains(t, content, "func (f TestStructFieldMutUint8) Ptr() *uint8 {\n\treturn f.p\n}")
	assert.Contains(t, content, "func (f TestStructFieldMutUint8) Set(v uint8) {\n\t*f.p = v\n}")

	// Accessors.
	assert.Contains(t, content, "var TestStructFieldNames = [...]string{\n\t\"Name\",\n\t\"Age\",\n\t\"Important\",\n}")
	assert.Contains(t, content, "func (r *TestStruct) Field(name string) (TestStructField, bool) {")
	assert.Contains(t, content, "\tcase \"Age\":\n\t\treturn TestStructFieldUint8{v: &r.Age}, true\n")
	assert.Contains(t, content, "\tdefault:\n\t\treturn nil, false\n")
	assert.Contains(t, content, "func (r *TestStruct) FieldMut(name string) (TestStructFieldMut, bool) {")
	assert.Contains(t, content, "\t\treturn TestStructFieldMutOptionImportantInfo{p: &r.Important}, true\n")
	assert.Contains(t, content, "func (r *TestStruct) Fields() iter.Seq2[string, TestStructField] {")

	// Doc comments.
	assert.Contains(t, content, "// TestStructField is a shared view of one field of TestStruct.")
	assert.Contains(t, content, "// TestStructFieldString views the string fields Name.")
}

func TestGenerator_Generate_Deduplicates(t *testing.T) {
	content := generate(t, "Ages")

	assert.Equal(t, 1, strings.Count(content, "type AgesFieldInt64 struct"))
	assert.Contains(t, content, "// AgesFieldInt64 views the int64 fields DogAge, CatAge.")
	assert.Contains(t, content, "\tcase \"CatAge\":\n\t\treturn AgesFieldInt64{v: &r.CatAge}, true\n")
	assert.Contains(t, content, "\tcase \"Age\":\n\t\treturn AgesFieldAmazingAge{v: &r.Age}, true\n")
	assert.Contains(t, content, "type AgesFieldMutAmazingAge struct")
}

func TestGenerator_Generate_Capabilities(t *testing.T) {
	t.Run("separate lists", func(t *testing.T) {
		content := generate(t, "Named")

		assert.Contains(t, content, "\t\"fmt\"\n")
		assert.Contains(t, content,
			"func (f NamedValueString) String() string {\n\treturn fmt.Sprintf(\"String(%v)\", *f.v)\n}")
		assert.Contains(t, content,
			"func (f NamedValueString) Clone() NamedValueString {\n\treturn NamedValueString{v: f.v}\n}")
		assert.Contains(t, content,
			"func (f NamedValueMutInt64) String() string {\n\treturn fmt.Sprintf(\"Int64(%v)\", *f.p)\n}")
		assert.NotContains(t, content, "GoString")
		assert.NotContains(t, content, "Equal")
		assert.NotContains(t, content, "NamedValueMutString) Clone")
	})

	t.Run("capabilities_all", func(t *testing.T) {
		content := generate(t, "Everything")

		assert.Contains(t, content, "\t\"reflect\"\n")
		assert.Contains(t, content,
			"func (f EverythingFieldTotal) GoString() string {\n\treturn fmt.Sprintf(\"EverythingField.Total(%#v)\", *f.v)\n}")
		assert.Contains(t, content,
			"func (f EverythingFieldMutString) GoString() string {\n\treturn fmt.Sprintf(\"EverythingFieldMut.String(%#v)\", *f.p)\n}")
		assert.Contains(t, content,
			"func (f EverythingFieldTotal) Equal(o EverythingField) bool {\n\tg, ok := o.(EverythingFieldTotal)\n\treturn ok && reflect.DeepEqual(*f.v, *g.v)\n}")
		assert.Contains(t, content, "func (f EverythingFieldMutTotal) Equal(o EverythingFieldMut) bool {")
		assert.NotContains(t, content, "Clone")
		assert.NotContains(t, content, ") String() string")
	})
}

func TestGenerator_Generate_Generic(t *testing.T) {
	content := generate(t, "Pair")

	assert.Contains(t, content, "type PairField[K comparable, V any] interface {\n\tisPairField()\n}")
	assert.Contains(t, content, "type PairFieldK[K comparable, V any] struct {\n\tv *K\n}")
	assert.Contains(t, content, "func (PairFieldK[K, V]) isPairField() {}")
	assert.Contains(t, content, "func (f PairFieldV[K, V]) Value() V {")
	assert.Contains(t, content, "func (r *Pair[K, V]) Field(name string) (PairField[K, V], bool) {")
	assert.Contains(t, content, "\t\treturn PairFieldK[K, V]{v: &r.Key}, true\n")
	assert.Contains(t, content, "\t\treturn PairFieldMutInt[K, V]{p: &r.Hits}, true\n")
	assert.Contains(t, content, "func (r *Pair[K, V]) Fields() iter.Seq2[string, PairField[K, V]] {")
	assert.Contains(t, content, "var PairFieldNames = [...]string{")
}

func TestGenerator_Generate_QualifiedConstraint(t *testing.T) {
	content := generate(t, "Ord")

	assert.Contains(t, content, "import (\n\t\"cmp\"\n\t\"iter\"\n)")
	assert.Contains(t, content, "type OrdField[T cmp.Ordered] interface {")
	assert.Contains(t, content, "func (r *Ord[T]) Field(name string) (OrdField[T], bool) {")
}

func TestGenerator_Generate_ArrayField(t *testing.T) {
	content := generate(t, "Digest")

	assert.Contains(t, content, "type DigestField16byte struct {\n\tv *[16]byte\n}")
	assert.Contains(t, content, "\t\treturn DigestFieldMut16byte{p: &r.Sum}, true\n")
}

func TestGenerator_Generate_UnexportedFields(t *testing.T) {
	content := generate(t, "grouped")

	assert.Contains(t, content, "type groupedField interface {")
	assert.Contains(t, content, "\t\treturn groupedFieldInt{v: &r.b}, true\n")
	assert.Contains(t, content, "type groupedFieldByte struct {\n\tv *[]byte\n}")
	assert.NotContains(t, content, "\"_\"")
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	files, err := NewGenerator(GeneratorConfig{}, nil).Generate(resolve(t, "TestStruct"))
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.NotContains(t, content, "// Value returns")
	assert.NotContains(t, content, "is a shared view")
	assert.Contains(t, content, "// Code generated by fieldname-gen. DO NOT EDIT.")
}

func TestGenerator_Generate_RejectsInvalidPlan(t *testing.T) {
	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(resolve(t, "Collides"))
	assert.Nil(t, files)
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.ErrorContains(t, err, "[tag-collision]")
}

func TestGenerator_GenerateRecord_ImportAlias(t *testing.T) {
	rp := manualPlan(t, &schema.Record{
		Name: "Doc",
		Fields: []schema.FieldDescriptor{
			{
				Name:      "Root",
				Signature: "yamlv3.Node",
				Imports:   []schema.Import{{Name: "yamlv3", Path: "gopkg.in/yaml.v3"}},
			},
			{
				Name:      "Logger",
				Signature: "*slog.Logger",
				Imports:   []schema.Import{{Name: "slog", Path: "log/slog"}},
			},
		},
	})

	file, err := NewGenerator(DefaultGeneratorConfig(), nil).GenerateRecord("docs", rp)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "import (\n\t\"iter\"\n\t\"log/slog\"\n\n\tyamlv3 \"gopkg.in/yaml.v3\"\n)")
	assert.Contains(t, content, "type DocFieldNode struct {\n\tv *yamlv3.Node\n}")
	assert.Contains(t, content, "type DocFieldLogger struct {\n\tv **slog.Logger\n}")
}

func TestGenerator_GenerateRecord_FormatFailure(t *testing.T) {
	dir := t.TempDir()

	rp := manualPlan(t, &schema.Record{
		Name:   "Broken",
		Fields: []schema.FieldDescriptor{{Name: "X", Signature: "int)"}},
	})

	file, err := NewGenerator(GeneratorConfig{DebugDir: dir}, nil).GenerateRecord("broken", rp)
	require.Error(t, err)
	assert.ErrorContains(t, err, "formatting code")
	require.NotNil(t, file)
	assert.Contains(t, string(file.Content), "v *int)")

	sidecar, readErr := os.ReadFile(filepath.Join(dir, "broken_fieldname.unformatted.go"))
	require.NoError(t, readErr)
	assert.Equal(t, file.Content, sidecar)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	files := []GeneratedFile{
		{Filename: "a_fieldname.go", Content: []byte("package a\n")},
		{Filename: "b_fieldname.go", Content: []byte("package a\n\nvar B = 1\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}

func TestWriteDebugUnformatted_NoDir(t *testing.T) {
	assert.NoError(t, writeDebugUnformatted("", "x.go", []byte("x")))
}

func TestGenerator_Generate_MatchesCheckedInFile(t *testing.T) {
	pkg, err := analyze.NewAnalyzer(nil).LoadPackage("fieldname-generator/examples/person")
	require.NoError(t, err)

	p, err := plan.NewResolver(nil, plan.DefaultConfig(), nil).Resolve(pkg, "Person")
	require.NoError(t, err)

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	want, err := os.ReadFile(filepath.Join(pkg.Dir, files[0].Filename))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(files[0].Content))
}
