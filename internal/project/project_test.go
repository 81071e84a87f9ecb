package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bms-codec/internal/model"
)

func sampleProject() *model.Project {
	p := model.NewProject("DEMO")
	p.Description = "customer screens"

	m := model.NewMap("CUSTMAP", "CUSTSET")
	m.Title = "Customer inquiry"
	m.Ctrl = []string{"FREEKB"}
	m.Size = model.Size{Height: 12, Width: 40}
	m.AddField(&model.Field{
		Name: "CUSTNO", Line: 5, Column: 20, Length: 8, Type: model.FieldInput,
		Attributes: model.NewAttributeSet(model.AttrUnprotected, model.AttrInsertCursor),
		PicIn:      "9(8)",
	})
	m.AddField(&model.Field{
		Name: "FIELD02", Line: 1, Column: 1, Length: 12, Type: model.FieldLabel,
		Initial: "IT'S \"QUOTED\"", Color: "BLUE", Hilight: "REVERSE",
	})
	p.AddMap(m)

	other := model.NewMap("MAPA02", "MAPSET01")
	other.AddField(&model.Field{Name: "TOTAL", Line: 2, Column: 2, Length: 10, Type: model.FieldOutput, PicOut: "ZZ9.99"})
	p.AddMap(other)

	return p
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"project.yaml", "project.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleProject()

			require.NoError(t, Save(want, path))

			got, err := Load(path, nil)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshal_YAMLShape(t *testing.T) {
	data, err := Marshal(FromProject(sampleProject()), FormatYAML)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "size: [12, 40]")
	assert.Contains(t, out, "attributes: [UNPROT, IC]")
	assert.Contains(t, out, "field_type: INPUT")
	assert.Contains(t, out, "mapset_name: CUSTSET")
}

func TestToProject_Defaults(t *testing.T) {
	src := `
maps:
  - fields:
      - line: 3
        field_type: bogus
        attributes: [UNPROT, NOPE]
      - name: X
        attributes: askip
        field_type: output
        color: red
`

	doc, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)

	tmpl := model.NewMap("MAPA99", model.DefaultMapsetName)
	tmpl.Lang = "PLI"

	p := ToProject(doc, tmpl)
	assert.Equal(t, DefaultProjectName, p.Name)
	require.Len(t, p.Maps, 1)

	m := p.Maps[0]
	assert.Equal(t, "MAPA99", m.Name)
	assert.Equal(t, model.DefaultMapsetName, m.MapsetName)
	assert.Equal(t, model.Size{Height: 24, Width: 80}, m.Size)
	assert.Equal(t, model.DefaultMode, m.Mode)
	assert.Equal(t, "PLI", m.Lang)
	require.Len(t, m.Fields, 2)

	first := m.Fields[0]
	assert.Equal(t, "CAMPO01", first.Name)
	assert.Equal(t, 3, first.Line)
	assert.Equal(t, 1, first.Column)
	assert.Equal(t, 1, first.Length)
	assert.Equal(t, model.FieldInput, first.Type)
	assert.Equal(t, model.NewAttributeSet(model.AttrUnprotected), first.Attributes)

	second := m.Fields[1]
	assert.Equal(t, "X", second.Name)
	assert.Equal(t, model.FieldOutput, second.Type)
	assert.Equal(t, model.NewAttributeSet(model.AttrAutoSkip), second.Attributes)
	assert.Equal(t, "RED", second.Color)
}

func TestParse_JSONStringOrArray(t *testing.T) {
	src := `{"name":"P","maps":[{"name":"M1","ctrl":"FREEKB","fields":[{"name":"A","attributes":"PROT"}]}]}`

	doc, err := Parse([]byte(src), FormatJSON)
	require.NoError(t, err)

	require.Len(t, doc.Maps, 1)
	assert.Equal(t, StringOrArray{"FREEKB"}, doc.Maps[0].Ctrl)
	assert.Equal(t, StringOrArray{"PROT"}, doc.Maps[0].Fields[0].Attributes)

	_, err = Parse([]byte(`{"maps":[{"ctrl":5}]}`), FormatJSON)
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("maps: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse project YAML")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("a/b.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("a/b.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("noext"))
}
