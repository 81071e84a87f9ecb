package validate

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"bms-codec/internal/diagnostic"
	"bms-codec/internal/model"
)

// Diagnostic codes.
const (
	CodeNilMap            = "map_is_nil"
	CodeInvalidMapName    = "invalid_map_name"
	CodeInvalidMapsetName = "invalid_mapset_name"
	CodeHeightOutOfRange  = "height_out_of_range"
	CodeWidthOutOfRange   = "width_out_of_range"
	CodeInvalidFieldName  = "invalid_field_name"
	CodeLineOutOfRange    = "line_out_of_range"
	CodeColumnOutOfRange  = "column_out_of_range"
	CodeInvalidLength     = "invalid_length"
	CodeExceedsWidth      = "exceeds_width"
	CodeDuplicateField    = "duplicate_field"
	CodeFieldOverlap      = "field_overlap"
	CodeInitialTooLong    = "initial_too_long"
	CodeUnknownColor      = "unknown_color"
	CodeUnknownHilight    = "unknown_hilight"
	CodeControlCharacter  = "control_character"
	CodeDuplicateMap      = "duplicate_map"
)

// Colors lists the accepted COLOR operands.
var Colors = []string{"RED", "BLUE", "GREEN", "YELLOW", "PINK", "TURQUOISE", "WHITE", "NEUTRAL", "DEFAULT"}

// Hilights lists the accepted HILIGHT operands.
var Hilights = []string{"OFF", "BLINK", "REVERSE", "UNDERLINE"}

// Validate checks m and returns every violation as an error and every
// suspicious but encodable construct as a warning.
//
// Synthesized placeholder names (FIELDnn, CAMPOnn, FIELD_<line>_<column>,
// AUTO_x, GEN_x) pass the field name check. The encoder writes them as blank
// labels. FIELD_<line>_<column> may be longer than MaxNameLen.
func Validate(m *model.Map) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError(CodeNilMap, "map is nil", "", "")
		return res
	}

	if !model.IsValidName(m.Name) {
		res.AddError(CodeInvalidMapName,
			fmt.Sprintf("invalid map name %q (must be alphanumeric, start with a letter, at most %d characters)", m.Name, model.MaxNameLen),
			m.Name, "")
	}

	if !model.IsValidName(m.MapsetName) {
		res.AddError(CodeInvalidMapsetName,
			fmt.Sprintf("invalid mapset name %q (must be alphanumeric, start with a letter, at most %d characters)", m.MapsetName, model.MaxNameLen),
			m.Name, "")
	}

	if m.Size.Height < 1 || m.Size.Height > model.MaxHeight {
		res.AddError(CodeHeightOutOfRange,
			fmt.Sprintf("height %d out of range 1–%d", m.Size.Height, model.MaxHeight), m.Name, "")
	}

	if m.Size.Width < 1 || m.Size.Width > model.MaxWidth {
		res.AddError(CodeWidthOutOfRange,
			fmt.Sprintf("width %d out of range 1–%d", m.Size.Width, model.MaxWidth), m.Name, "")
	}

	seen := make(map[string]struct{}, len(m.Fields))

	for i, f := range m.Fields {
		validateField(res, m, i, f)

		if f == nil {
			continue
		}

		if _, ok := seen[f.Name]; ok {
			res.AddError(CodeDuplicateField, fmt.Sprintf("duplicate field name %q", f.Name), m.Name, f.Name)
			continue
		}

		seen[f.Name] = struct{}{}
	}

	placed := *m
	placed.Fields = slices.DeleteFunc(slices.Clone(m.Fields), func(f *model.Field) bool { return f == nil })

	for _, pair := range placed.OverlappingFields() {
		res.AddWarning(CodeFieldOverlap,
			fmt.Sprintf("fields %s and %s overlap", pair[0].Name, pair[1].Name), m.Name, pair[1].Name)
	}

	return res
}

func validateField(res *diagnostic.Diagnostics, m *model.Map, i int, f *model.Field) {
	if f == nil {
		res.AddError(CodeInvalidFieldName, fmt.Sprintf("field %d is nil", i+1), m.Name, "")
		return
	}

	at := fmt.Sprintf("field %d", i+1)

	if !model.IsValidName(f.Name) && !model.IsAutoName(f.Name) {
		res.AddError(CodeInvalidFieldName, fmt.Sprintf("%s: invalid field name %q", at, f.Name), m.Name, f.Name)
	}

	if f.Line < 1 || f.Line > m.Size.Height {
		res.AddError(CodeLineOutOfRange,
			fmt.Sprintf("%s: line %d out of range 1–%d", at, f.Line, m.Size.Height), m.Name, f.Name)
	}

	if f.Column < 1 || f.Column > m.Size.Width {
		res.AddError(CodeColumnOutOfRange,
			fmt.Sprintf("%s: column %d out of range 1–%d", at, f.Column, m.Size.Width), m.Name, f.Name)
	}

	if f.Length < 1 {
		res.AddError(CodeInvalidLength, fmt.Sprintf("%s: length must be at least 1", at), m.Name, f.Name)
	}

	if f.End() > m.Size.Width {
		res.AddError(CodeExceedsWidth,
			fmt.Sprintf("%s: extends beyond screen width (ends at column %d of %d)", at, f.End(), m.Size.Width),
			m.Name, f.Name)
	}

	if f.Length >= 1 && len([]rune(f.Initial)) > f.Length {
		res.AddWarning(CodeInitialTooLong,
			fmt.Sprintf("%s: initial value is longer than the field (%d > %d)", at, len([]rune(f.Initial)), f.Length),
			m.Name, f.Name)
	}

	for _, lit := range []struct{ key, value string }{
		{"INITIAL", f.Initial},
		{"PICIN", f.PicIn},
		{"PICOUT", f.PicOut},
	} {
		if i := strings.IndexFunc(lit.value, unicode.IsControl); i >= 0 {
			res.AddError(CodeControlCharacter,
				fmt.Sprintf("%s: %s contains control character %U", at, lit.key, []rune(lit.value[i:])[0]),
				m.Name, f.Name)
		}
	}

	if f.Color != "" && !slices.Contains(Colors, f.Color) {
		res.AddError(CodeUnknownColor, fmt.Sprintf("%s: unknown color %q", at, f.Color), m.Name, f.Name)
	}

	if f.Hilight != "" && !slices.Contains(Hilights, f.Hilight) {
		res.AddError(CodeUnknownHilight, fmt.Sprintf("%s: unknown hilight %q", at, f.Hilight), m.Name, f.Name)
	}
}

// Violations returns the error messages of Validate, the plain list of
// structural rule violations. An empty list means the map is valid.
func Violations(m *model.Map) []string {
	return Validate(m).Messages()
}

// ValidateProject validates every map of p and flags duplicate map names.
func ValidateProject(p *model.Project) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError(CodeNilMap, "project is nil", "", "")
		return res
	}

	seen := make(map[string]struct{}, len(p.Maps))

	for _, m := range p.Maps {
		res.Merge(*Validate(m))

		if m == nil {
			continue
		}

		if _, ok := seen[m.Name]; ok {
			res.AddError(CodeDuplicateMap, fmt.Sprintf("duplicate map name %q", m.Name), m.Name, "")
			continue
		}

		seen[m.Name] = struct{}{}
	}

	return res
}
