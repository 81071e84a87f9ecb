package model

// Field is one DFHMDF definition: a region of the screen.
type Field struct {
	// Name is the BMS label. It may be a synthesized placeholder (see IsAutoName).
	Name string
	// Line is the 1-based screen row.
	Line int
	// Column is the 1-based screen column.
	Column int
	// Length is the number of screen positions, at least 1.
	Length int
	// Type is the editing classification of the field.
	Type FieldType
	// Attributes is the ATTRB set.
	Attributes AttributeSet
	// Initial is the unescaped INITIAL text. Empty means absent.
	Initial string
	// PicIn and PicOut are the PICIN/PICOUT picture strings. Empty means absent.
	PicIn  string
	PicOut string
	// Color and Hilight are the COLOR/HILIGHT keywords. Empty means absent.
	Color   string
	Hilight string
}

// Clone returns a copy of f.
func (f *Field) Clone() *Field {
	c := *f
	return &c
}

// End returns the last column occupied by the field.
func (f *Field) End() int {
	return f.Column + f.Length - 1
}
