package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bms-codec/internal/model"
)

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

// card pads text so that the continuation marker lands in column 72.
func card(text string) string {
	return text + strings.Repeat(" ", 71-len(text)) + "*"
}

func TestDecode_SingleField(t *testing.T) {
	src := lines(
		"MAPA01   DFHMDI SIZE=(24,80)",
		"FLDNAME  DFHMDF POS=(5,10),LENGTH=8,ATTRB=(UNPROT,IC)",
	)

	m := Decode(src, DefaultOptions())

	require.Len(t, m.Fields, 1)
	f := m.Fields[0]
	assert.Equal(t, "FLDNAME", f.Name)
	assert.Equal(t, 5, f.Line)
	assert.Equal(t, 10, f.Column)
	assert.Equal(t, 8, f.Length)
	assert.Equal(t, model.FieldInput, f.Type)
	assert.Equal(t, model.NewAttributeSet(model.AttrUnprotected, model.AttrInsertCursor), f.Attributes)
	assert.Equal(t, "MAPA01", m.Name)
	assert.Equal(t, model.Size{Height: 24, Width: 80}, m.Size)
}

func TestDecode_MapsetMetadata(t *testing.T) {
	src := lines(
		card("MYSET    DFHMSD TYPE=&SYSPARM,MODE=OUT,LANG=PLI,"),
		"               TERM=3270-2,CTRL=(FREEKB),STORAGE=AUTO",
		"SCREEN1  DFHMDI SIZE=(12,40)",
		"         DFHMSD TYPE=FINAL",
		"         END",
	)

	m, diags := DecodeReport(src, DefaultOptions())

	assert.Equal(t, "MYSET", m.MapsetName)
	assert.Equal(t, "SCREEN1", m.Name)
	assert.Equal(t, model.Size{Height: 12, Width: 40}, m.Size)
	assert.Equal(t, "OUT", m.Mode)
	assert.Equal(t, "PLI", m.Lang)
	assert.Equal(t, "3270-2", m.Term)
	assert.Equal(t, "AUTO", m.Storage)
	assert.Equal(t, []string{"FREEKB"}, m.Ctrl)
	assert.Equal(t, 0, diags.Count())
}

func TestDecode_Defaults(t *testing.T) {
	m := Decode("", Options{})

	assert.Equal(t, model.DefaultMapName, m.Name)
	assert.Equal(t, model.DefaultMapsetName, m.MapsetName)
	assert.Equal(t, model.DefaultMode, m.Mode)
	assert.Empty(t, m.Fields)

	m = Decode(lines("         DFHMSD TYPE=&SYSPARM"), Options{MapsetName: "OTHER"})
	assert.Equal(t, "OTHER", m.MapsetName)
}

func TestDecode_Template(t *testing.T) {
	tmpl := model.NewMap("IGNORED", "IGNORED")
	tmpl.Mode = "OUT"
	tmpl.Size = model.Size{Height: 12, Width: 40}
	tmpl.AddField(&model.Field{Name: "STALE", Line: 1, Column: 1, Length: 1})

	m := Decode(lines("F        DFHMDF POS=13,LENGTH=2"), Options{Template: tmpl})

	assert.Equal(t, model.DefaultMapName, m.Name)
	assert.Equal(t, model.DefaultMapsetName, m.MapsetName)
	assert.Equal(t, "OUT", m.Mode)
	require.Len(t, m.Fields, 1)
	assert.Equal(t, "F", m.Fields[0].Name)
	assert.Equal(t, 1, m.Fields[0].Line)
	assert.Equal(t, 14, m.Fields[0].Column)
	assert.Len(t, tmpl.Fields, 1, "template is not modified")
}

func TestDecode_TypeInference(t *testing.T) {
	src := lines(
		"A        DFHMDF POS=(1,1),LENGTH=5,PICIN='9(5)',ATTRB=NUM",
		"B        DFHMDF POS=(2,1),LENGTH=5,ATTRB=ASKIP",
		"         DFHMDF POS=(3,1),LENGTH=5,INITIAL='HI'",
		"C        DFHMDF POS=(4,1),LENGTH=5,PICOUT='ZZ9'",
		"D        DFHMDF POS=(5,1),LENGTH=5,INITIAL='X'",
		"E        DFHMDF POS=(6,1),LENGTH=5",
		"         DFHMDF POS=(7,1),LENGTH=5,ATTRB=(PROT,BRT)",
	)

	m := Decode(src, DefaultOptions())
	require.Len(t, m.Fields, 7)

	want := []model.FieldType{
		model.FieldInput,
		model.FieldInput,
		model.FieldLabel,
		model.FieldOutput,
		model.FieldLabel,
		model.FieldLabel,
		model.FieldInput,
	}

	for i, f := range m.Fields {
		assert.Equal(t, want[i], f.Type, "field %d (%s)", i, f.Name)
	}

	assert.Equal(t, "9(5)", m.Fields[0].PicIn)
	assert.Equal(t, "ZZ9", m.Fields[3].PicOut)
	assert.Equal(t, "HI", m.Fields[2].Initial)
}

func TestDecode_DropsFieldsWithoutPosition(t *testing.T) {
	src := lines(
		"NOPOS    DFHMDF LENGTH=5",
		"ZERO     DFHMDF POS=(0,5),LENGTH=5",
		"NOLEN    DFHMDF POS=(1,5),LENGTH=0",
		"BADPOS   DFHMDF POS=(A,B),LENGTH=2",
		"OK       DFHMDF POS=(2,2)",
	)

	m, diags := DecodeReport(src, DefaultOptions())

	require.Len(t, m.Fields, 1)
	assert.Equal(t, "OK", m.Fields[0].Name)
	assert.Equal(t, 1, m.Fields[0].Length, "LENGTH defaults to 1")

	require.Len(t, diags.Warnings, 4)

	for _, w := range diags.Warnings {
		assert.Equal(t, CodeMissingPosition, w.Code)
	}

	assert.Equal(t, 1, diags.Warnings[0].Line)
	assert.Equal(t, 4, diags.Warnings[3].Line)
}

func TestDecode_OffsetPosition(t *testing.T) {
	src := lines(
		"         DFHMDI SIZE=(24,80)",
		"F1       DFHMDF POS=85,LENGTH=3",
		"F2       DFHMDF POS=0,LENGTH=3",
	)

	m := Decode(src, DefaultOptions())
	require.Len(t, m.Fields, 2)

	assert.Equal(t, 2, m.Fields[0].Line)
	assert.Equal(t, 6, m.Fields[0].Column)
	assert.Equal(t, 1, m.Fields[1].Line)
	assert.Equal(t, 1, m.Fields[1].Column)
}

func TestDecode_Names(t *testing.T) {
	src := lines(
		"MY_FLD   DFHMDF POS=(1,1),LENGTH=2",
		"         DFHMDF POS=(2,1),LENGTH=2",
		"BAD$NAME DFHMDF POS=(3,1),LENGTH=2",
		"FIELD04  DFHMDF POS=(4,1),LENGTH=2",
		"         DFHMDF POS=(5,7),LENGTH=2",
	)

	m, diags := DecodeReport(src, DefaultOptions())
	require.Len(t, m.Fields, 5)

	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}

	assert.Equal(t, []string{"MY_FLD", "FIELD02", "FIELD03", "FIELD04", "FIELD05"}, names)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, CodeInvalidName, diags.Infos[0].Code)
	assert.Equal(t, 3, diags.Infos[0].Line)

	legacy := Decode(src, Options{LegacyNames: true})
	assert.Equal(t, "FIELD_2_1", legacy.Fields[1].Name)
	assert.Equal(t, "FIELD_3_1", legacy.Fields[2].Name)
	assert.Equal(t, "FIELD_5_7", legacy.Fields[4].Name)
}

func TestDecode_Quotes(t *testing.T) {
	src := lines(
		"NAME     DFHMDF POS=(1,1),LENGTH=7,INITIAL='O''BRIEN'",
		"SEP      DFHMDF POS=(2,1),LENGTH=5,INITIAL='A, B'",
	)

	m := Decode(src, DefaultOptions())
	require.Len(t, m.Fields, 2)
	assert.Equal(t, "O'BRIEN", m.Fields[0].Initial)
	assert.Equal(t, "A, B", m.Fields[1].Initial)

	// Legacy mode keeps the doubled quote as written.
	raw := Decode(src, Options{RawQuotes: true})
	assert.Equal(t, "O''BRIEN", raw.Fields[0].Initial)
}

func TestDecode_ColorAndHilight(t *testing.T) {
	src := lines("F        DFHMDF POS=(1,1),LENGTH=2,COLOR=red,HILIGHT=REVERSE")

	m := Decode(src, DefaultOptions())
	require.Len(t, m.Fields, 1)
	assert.Equal(t, "RED", m.Fields[0].Color)
	assert.Equal(t, "REVERSE", m.Fields[0].Hilight)
}

func TestDecodeReport_Diagnostics(t *testing.T) {
	src := lines(
		"THIS IS NOT A STATEMENT",
		"F        DFHMDF POS=(1,1),LENGTH=2,ATTRB=(UNPRT,IC)",
	)

	m, diags := DecodeReport(src, DefaultOptions())

	require.Len(t, m.Fields, 1)
	assert.Equal(t, model.NewAttributeSet(model.AttrInsertCursor), m.Fields[0].Attributes)

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, CodeMalformedDirective, diags.Warnings[0].Code)
	assert.Equal(t, 1, diags.Warnings[0].Line)
	assert.Equal(t, CodeUnknownAttribute, diags.Warnings[1].Code)
	assert.Equal(t, []string{"UNPROT"}, diags.Warnings[1].Suggestions)
	assert.False(t, diags.HasErrors())
}

func TestDecode_Title(t *testing.T) {
	src := lines(
		"*        TITLE: Customer inquiry",
		"         DFHMDI SIZE=(24,80)",
	)

	assert.Equal(t, "Customer inquiry", Decode(src, DefaultOptions()).Title)
}

func TestDecode_CompactForm(t *testing.T) {
	src := lines(
		"DFHMDI SIZE=(10,40)",
		"NAME DFHMDF POS=(3,4),LENGTH=6,ATTRB=UNPROT",
	)

	m := Decode(src, DefaultOptions())
	assert.Equal(t, model.Size{Height: 10, Width: 40}, m.Size)
	require.Len(t, m.Fields, 1)
	assert.Equal(t, "NAME", m.Fields[0].Name)
	assert.Equal(t, model.NewAttributeSet(model.AttrUnprotected), m.Fields[0].Attributes)
}

func TestLooksLikeBMS(t *testing.T) {
	assert.True(t, LooksLikeBMS("FLDNAME  DFHMDF POS=(5,10),LENGTH=8"))
	assert.True(t, LooksLikeBMS("POS=(1,1) LENGTH=3\nATTRB=ASKIP\n"))
	assert.False(t, LooksLikeBMS("The quick brown fox\njumps over the lazy dog\n"))
	assert.False(t, LooksLikeBMS("* DFHMDF only in a comment\n"))
	assert.False(t, LooksLikeBMS(""))
}
