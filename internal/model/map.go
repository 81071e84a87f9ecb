package model

import (
	"slices"
)

// Screen and naming limits.
const (
	MaxHeight  = 24
	MaxWidth   = 80
	MaxNameLen = 8
)

// Defaults for a new map, matching a 3270 model 2 terminal.
const (
	DefaultMapName    = "MAPA01"
	DefaultMapsetName = "MAPSET01"
	DefaultMode       = "INOUT"
	DefaultLang       = "COBOL"
	DefaultTerm       = "3270-2"
	DefaultStorage    = "AUTO"
)

// DefaultCtrl is rendered when a map has an empty ctrl list.
var DefaultCtrl = []string{"FREEKB", "FRSET"}

// Size is the screen size of a map.
type Size struct {
	Height int
	Width  int
}

// Map is one DFHMDI screen layout together with the DFHMSD metadata of its mapset.
type Map struct {
	Name       string
	MapsetName string
	Size       Size
	// Fields keeps insertion order. Encoding sorts a copy by position.
	Fields []*Field

	Mode    string
	Lang    string
	Term    string
	Ctrl    []string
	Storage string
	Title   string
}

// NewMap creates an empty 24x80 map with the default device metadata.
func NewMap(name, mapsetName string) *Map {
	return &Map{
		Name:       name,
		MapsetName: mapsetName,
		Size:       Size{Height: MaxHeight, Width: MaxWidth},
		Mode:       DefaultMode,
		Lang:       DefaultLang,
		Term:       DefaultTerm,
		Storage:    DefaultStorage,
	}
}

// AddField appends f to the map.
func (m *Map) AddField(f *Field) {
	m.Fields = append(m.Fields, f)
}

// RemoveField removes the first field called name and reports whether one was found.
func (m *Map) RemoveField(name string) bool {
	for i, f := range m.Fields {
		if f.Name == name {
			m.Fields = slices.Delete(m.Fields, i, i+1)
			return true
		}
	}

	return false
}

// Field returns the first field called name, or nil.
func (m *Map) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// HasFieldName reports whether any field is called name.
func (m *Map) HasFieldName(name string) bool {
	return m.Field(name) != nil
}

// SortedFields returns the fields ordered by (line, column). Fields at the
// same position keep their insertion order. The map itself is not modified.
func (m *Map) SortedFields() []*Field {
	out := slices.Clone(m.Fields)
	slices.SortStableFunc(out, func(a, b *Field) int {
		if a.Line != b.Line {
			return a.Line - b.Line
		}

		return a.Column - b.Column
	})

	return out
}

// EffectiveCtrl returns the ctrl list, or DefaultCtrl when it is empty.
func (m *Map) EffectiveCtrl() []string {
	if len(m.Ctrl) == 0 {
		return DefaultCtrl
	}

	return m.Ctrl
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	c := *m
	c.Ctrl = slices.Clone(m.Ctrl)
	c.Fields = make([]*Field, len(m.Fields))

	for i, f := range m.Fields {
		c.Fields[i] = f.Clone()
	}

	return &c
}
