package project

import (
	"slices"

	"bms-codec/internal/common"
	"bms-codec/internal/model"
)

// DefaultProjectName names a project whose document has no name.
const DefaultProjectName = "PROJECT"

// defaultFieldBase prefixes the names given to imported fields without one.
const defaultFieldBase = "CAMPO"

// FromProject converts p to its interchange document.
func FromProject(p *model.Project) *Document {
	doc := &Document{
		Name:        p.Name,
		Description: p.Description,
		Maps:        make([]MapDoc, 0, len(p.Maps)),
	}

	for _, m := range p.Maps {
		doc.Maps = append(doc.Maps, FromMap(m))
	}

	return doc
}

// FromMap converts m to its interchange form.
func FromMap(m *model.Map) MapDoc {
	doc := MapDoc{
		Name:       m.Name,
		MapsetName: m.MapsetName,
		Size:       []int{m.Size.Height, m.Size.Width},
		Lang:       m.Lang,
		Mode:       m.Mode,
		Term:       m.Term,
		Ctrl:       slices.Clone(m.Ctrl),
		Storage:    m.Storage,
		Title:      m.Title,
		Fields:     make([]FieldDoc, 0, len(m.Fields)),
	}

	for _, f := range m.Fields {
		doc.Fields = append(doc.Fields, FieldDoc{
			Name:         f.Name,
			Line:         ptr(f.Line),
			Column:       ptr(f.Column),
			Length:       ptr(f.Length),
			FieldType:    fieldTypeKeyword(f.Type),
			InitialValue: f.Initial,
			Attributes:   f.Attributes.Keywords(),
			PicIn:        f.PicIn,
			PicOut:       f.PicOut,
			Color:        f.Color,
			Hilight:      f.Hilight,
		})
	}

	return doc
}

// ToProject converts a document to a project. Values missing from the
// document are taken from template, or from the model defaults when template
// is nil.
func ToProject(doc *Document, template *model.Map) *model.Project {
	name := doc.Name
	if name == "" {
		name = DefaultProjectName
	}

	p := model.NewProject(name)
	p.Description = doc.Description

	for _, m := range ToMaps(doc, template) {
		p.AddMap(m)
	}

	return p
}

// ToMaps converts every map of doc, applying the import defaults.
func ToMaps(doc *Document, template *model.Map) []*model.Map {
	if template == nil {
		template = model.NewMap(model.DefaultMapName, model.DefaultMapsetName)
	}

	out := make([]*model.Map, 0, len(doc.Maps))
	for _, md := range doc.Maps {
		out = append(out, toMap(md, template))
	}

	return out
}

func toMap(md MapDoc, template *model.Map) *model.Map {
	m := template.Clone()
	m.Fields = nil
	m.Name = or(md.Name, template.Name)
	m.MapsetName = or(md.MapsetName, template.MapsetName)

	if len(md.Size) == 2 {
		m.Size = model.Size{Height: md.Size[0], Width: md.Size[1]}
	}

	m.Lang = or(common.Upper(md.Lang), m.Lang)
	m.Mode = or(common.Upper(md.Mode), m.Mode)
	m.Term = or(common.Upper(md.Term), m.Term)
	m.Storage = or(common.Upper(md.Storage), m.Storage)
	m.Title = md.Title

	if !md.Ctrl.IsEmpty() {
		m.Ctrl = make([]string, 0, len(md.Ctrl))
		for _, c := range md.Ctrl {
			m.Ctrl = append(m.Ctrl, common.Upper(c))
		}
	}

	for _, fd := range md.Fields {
		m.AddField(toField(m, fd))
	}

	return m
}

func toField(m *model.Map, fd FieldDoc) *model.Field {
	f := &model.Field{
		Name:    fd.Name,
		Line:    deref(fd.Line, 1),
		Column:  deref(fd.Column, 1),
		Length:  deref(fd.Length, 1),
		Type:    model.FieldInput,
		Initial: fd.InitialValue,
		PicIn:   fd.PicIn,
		PicOut:  fd.PicOut,
		Color:   common.Upper(fd.Color),
		Hilight: common.Upper(fd.Hilight),
	}

	if t, ok := model.ParseFieldType(fd.FieldType); ok {
		f.Type = t
	}

	for _, kw := range fd.Attributes {
		if a, ok := model.ParseAttribute(kw); ok {
			f.Attributes = f.Attributes.With(a)
		}
	}

	if f.Name == "" {
		f.Name = model.PositionName(f.Line, f.Column)
		if n, ok := model.UniqueFieldName(m, defaultFieldBase, len(m.Fields)+1); ok {
			f.Name = n
		}
	}

	return f
}

func fieldTypeKeyword(t model.FieldType) string {
	if !t.IsValid() {
		return ""
	}

	return t.String()
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

func ptr(n int) *int {
	return &n
}

func deref(p *int, fallback int) int {
	if p == nil {
		return fallback
	}

	return *p
}
