package model

// offset returns the 0-based position of the field start in the screen buffer.
func (m *Map) offset(line, column int) int {
	return (line-1)*m.Size.Width + column - 1
}

// Overlaps reports whether a and b share at least one screen position of m.
// Fields are laid out in the linear screen buffer, so a field running past
// the right edge continues on the next line.
func (m *Map) Overlaps(a, b *Field) bool {
	aStart := m.offset(a.Line, a.Column)
	bStart := m.offset(b.Line, b.Column)
	aEnd := aStart + a.Length - 1
	bEnd := bStart + b.Length - 1

	return aStart <= bEnd && bStart <= aEnd
}

// OverlappingFields returns every pair of overlapping fields, in field order.
func (m *Map) OverlappingFields() [][2]*Field {
	var out [][2]*Field

	for i, a := range m.Fields {
		for _, b := range m.Fields[i+1:] {
			if m.Overlaps(a, b) {
				out = append(out, [2]*Field{a, b})
			}
		}
	}

	return out
}
