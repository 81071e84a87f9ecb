package encode

import (
	"fmt"
	"strconv"
	"strings"

	"bms-codec/internal/model"
	"bms-codec/internal/source"
)

const titlePrefix = "*        TITLE: "

// Encode renders m as BMS source. It never fails; a map violating the model
// invariants still produces text, which the validator would have rejected.
func Encode(m *model.Map) string {
	var b strings.Builder

	emit := func(lines ...string) {
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	emit(mapsetHeader(m).lines()...)
	emit(statement{
		label:   m.Name,
		keyword: source.KeywordMap,
		params:  []string{fmt.Sprintf("SIZE=(%d,%d)", m.Size.Height, m.Size.Width)},
	}.lines()...)

	if m.Title != "" {
		emit(titlePrefix + titleText(m.Title))
	}

	for _, f := range m.SortedFields() {
		emit(fieldStatement(f).lines()...)
	}

	emit(statement{keyword: source.KeywordMapset, params: []string{"TYPE=FINAL"}}.lines()...)
	emit(fmt.Sprintf("%-8s %s", "", "END"))

	return b.String()
}

// titleText keeps the title on the comment line.
func titleText(title string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(title))
}

func mapsetHeader(m *model.Map) statement {
	return statement{
		label:   m.MapsetName,
		keyword: source.KeywordMapset,
		params: []string{
			"TYPE=&SYSPARM",
			"MODE=" + m.Mode,
			"LANG=" + m.Lang,
			"TERM=" + m.Term,
			"CTRL=(" + strings.Join(m.EffectiveCtrl(), ",") + ")",
			"STORAGE=" + m.Storage,
		},
		head:  3,
		split: true,
	}
}

// fieldStatement builds the DFHMDF call for f with its parameters in
// canonical order.
func fieldStatement(f *model.Field) statement {
	st := statement{
		keyword: source.KeywordField,
		params: []string{
			fmt.Sprintf("POS=(%d,%d)", f.Line, f.Column),
			"LENGTH=" + strconv.Itoa(f.Length),
		},
		head:   2,
		greedy: true,
	}

	if !model.IsAutoName(f.Name) {
		st.label = f.Name
	}

	if f.Initial != "" {
		st.params = append(st.params, "INITIAL="+source.Quote(f.Initial))
		st.head++
	}

	if !f.Attributes.IsEmpty() {
		st.params = append(st.params, "ATTRB=("+attributeList(f.Attributes)+")")
	}

	if f.PicIn != "" {
		st.params = append(st.params, "PICIN="+source.Quote(f.PicIn))
	}

	if f.PicOut != "" {
		st.params = append(st.params, "PICOUT="+source.Quote(f.PicOut))
	}

	if f.Color != "" {
		st.params = append(st.params, "COLOR="+f.Color)
	}

	if f.Hilight != "" {
		st.params = append(st.params, "HILIGHT="+f.Hilight)
	}

	return st
}

func attributeList(set model.AttributeSet) string {
	items := make([]string, 0, model.AttributeTotal)
	for _, a := range set.Slice() {
		items = append(items, attributeKeyword(a))
	}

	return strings.Join(items, ",")
}

// attributeKeyword is the ATTRB operand for a.
func attributeKeyword(a model.Attribute) string {
	switch a {
	case model.AttrAutoSkip:
		return "ASKIP"
	case model.AttrProtected:
		return "PROT"
	case model.AttrUnprotected:
		return "UNPROT"
	case model.AttrNumeric:
		return "NUM"
	case model.AttrBright:
		return "BRT"
	case model.AttrNormal:
		return "NORM"
	case model.AttrDark:
		return "DRK"
	case model.AttrInsertCursor:
		return "IC"
	case model.AttrFieldSet:
		return "FSET"
	default:
		return a.String()
	}
}
