package decode

import (
	"fmt"

	"bms-codec/internal/common"
	"bms-codec/internal/diagnostic"
	"bms-codec/internal/match"
	"bms-codec/internal/model"
	"bms-codec/internal/source"
)

// Diagnostic codes reported by DecodeReport.
const (
	CodeMalformedDirective = "malformed_directive"
	CodeMissingPosition    = "missing_position"
	CodeInvalidName        = "invalid_name"
	CodeUnknownAttribute   = "unknown_attribute"
)

const maxSuggestions = 2

type decoder struct {
	opts  Options
	m     *model.Map
	diags *diagnostic.Diagnostics
}

// Decode parses text into a map. It never fails.
func Decode(text string, opts Options) *model.Map {
	m, _ := DecodeReport(text, opts)
	return m
}

// DecodeReport parses text like Decode and also reports every line it
// skipped and every value it had to repair.
func DecodeReport(text string, opts Options) (*model.Map, *diagnostic.Diagnostics) {
	opts = opts.withDefaults()

	d := &decoder{
		opts:  opts,
		m:     opts.newMap(),
		diags: &diagnostic.Diagnostics{},
	}

	res := source.Scan(text)

	for _, l := range res.Malformed {
		d.diags.AddLineWarning(CodeMalformedDirective,
			fmt.Sprintf("unrecognized statement skipped: %q", l.Text), l.Number)
	}

	for _, dir := range res.Directives {
		switch dir.Keyword {
		case source.KeywordMapset:
			d.mapset(dir)
		case source.KeywordMap:
			d.mapDef(dir)
		case source.KeywordField:
			d.field(dir)
		}
	}

	if d.m.Title == "" {
		d.m.Title = res.Title
	}

	return d.m, d.diags
}

func (d *decoder) mapset(dir source.Directive) {
	params := source.Params(dir.Params)

	if typ, ok := params.Get("TYPE"); ok && common.Upper(typ) == "FINAL" {
		return
	}

	if dir.Label != "" {
		d.m.MapsetName = dir.Label
	} else {
		d.m.MapsetName = d.opts.MapsetName
	}

	set := func(key string, dst *string) {
		if v, ok := params.Get(key); ok && v != "" {
			*dst = common.Upper(source.Unquote(v, false))
		}
	}

	set("MODE", &d.m.Mode)
	set("LANG", &d.m.Lang)
	set("TERM", &d.m.Term)
	set("STORAGE", &d.m.Storage)

	if v, ok := params.Get("CTRL"); ok {
		ctrl := source.List(v)
		for i := range ctrl {
			ctrl[i] = common.Upper(ctrl[i])
		}

		d.m.Ctrl = ctrl
	}
}

func (d *decoder) mapDef(dir source.Directive) {
	if dir.Label != "" {
		d.m.Name = dir.Label
	}

	params := source.Params(dir.Params)
	if v, ok := params.Get("SIZE"); ok {
		if h, w, ok := source.Pair(v); ok {
			d.m.Size = model.Size{Height: h, Width: w}
		}
	}
}

func (d *decoder) field(dir source.Directive) {
	params := source.Params(dir.Params)

	line, column, ok := d.position(params)
	if !ok {
		d.diags.AddLineWarning(CodeMissingPosition, "field without a usable POS dropped", dir.Line)
		return
	}

	length := 1
	if v, ok := params.Get("LENGTH"); ok {
		if n, ok := source.Int(v); ok {
			length = n
		}
	}

	if line < 1 || column < 1 || length < 1 {
		d.diags.AddLineWarning(CodeMissingPosition,
			fmt.Sprintf("field at (%d,%d) length %d dropped", line, column, length), dir.Line)

		return
	}

	f := &model.Field{
		Line:       line,
		Column:     column,
		Length:     length,
		Initial:    d.literal(params, "INITIAL"),
		PicIn:      d.literal(params, "PICIN"),
		PicOut:     d.literal(params, "PICOUT"),
		Attributes: d.attributes(params, dir.Line),
		Color:      keyword(params, "COLOR"),
		Hilight:    keyword(params, "HILIGHT"),
	}

	f.Name = d.fieldName(dir.Label, line, column, dir.Line)
	f.Type = inferType(params, dir.Label != "")

	d.m.AddField(f)
}

// position resolves POS=(line,column), or the POS=offset form counted from
// the top-left corner of the map.
func (d *decoder) position(params source.ParamList) (int, int, bool) {
	v, ok := params.Get("POS")
	if !ok {
		return 0, 0, false
	}

	if line, column, ok := source.Pair(v); ok {
		return line, column, true
	}

	offset, ok := source.Int(v)
	if !ok || offset < 0 || d.m.Size.Width < 1 {
		return 0, 0, false
	}

	return offset/d.m.Size.Width + 1, offset%d.m.Size.Width + 1, true
}

func (d *decoder) literal(params source.ParamList, key string) string {
	v, ok := params.Get(key)
	if !ok {
		return ""
	}

	return source.Unquote(v, d.opts.RawQuotes)
}

func (d *decoder) attributes(params source.ParamList, line int) model.AttributeSet {
	v, ok := params.Get("ATTRB")
	if !ok {
		return 0
	}

	var set model.AttributeSet

	for _, item := range source.List(v) {
		attr, ok := model.ParseAttribute(item)
		if !ok {
			d.diags.AddLineWarning(CodeUnknownAttribute,
				fmt.Sprintf("unknown attribute %q ignored", item), line,
				match.Suggest(item, model.AttributeKeywords(), maxSuggestions)...)

			continue
		}

		set = set.With(attr)
	}

	return set
}

func (d *decoder) fieldName(label string, line, column, srcLine int) string {
	if model.IsLabelName(label) {
		return label
	}

	name := model.PositionName(line, column)
	if !d.opts.LegacyNames {
		if n, ok := model.UniqueFieldName(d.m, "FIELD", len(d.m.Fields)+1); ok {
			name = n
		}
	}

	if label != "" {
		d.diags.AddLineInfo(CodeInvalidName,
			fmt.Sprintf("label %q is not a valid field name, using %s", label, name), srcLine)
	}

	return name
}

func keyword(params source.ParamList, key string) string {
	v, _ := params.Get(key)
	return common.Upper(v)
}

// inferType classifies a field from the parameters it carries. The first
// matching rule wins.
func inferType(params source.ParamList, named bool) model.FieldType {
	switch {
	case params.Has("PICIN"):
		return model.FieldInput
	case params.Has("ATTRB"):
		return model.FieldInput
	case !named:
		return model.FieldLabel
	case params.Has("PICOUT"):
		return model.FieldOutput
	default:
		return model.FieldLabel
	}
}
