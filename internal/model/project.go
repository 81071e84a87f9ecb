package model

import "slices"

// Project groups the maps edited together.
type Project struct {
	Name        string
	Description string
	Maps        []*Map
}

// NewProject creates an empty project.
func NewProject(name string) *Project {
	return &Project{Name: name}
}

// AddMap appends m to the project.
func (p *Project) AddMap(m *Map) {
	p.Maps = append(p.Maps, m)
}

// Map returns the first map called name, or nil.
func (p *Project) Map(name string) *Map {
	for _, m := range p.Maps {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// RemoveMap removes the first map called name and reports whether one was found.
func (p *Project) RemoveMap(name string) bool {
	for i, m := range p.Maps {
		if m.Name == name {
			p.Maps = slices.Delete(p.Maps, i, i+1)
			return true
		}
	}

	return false
}
