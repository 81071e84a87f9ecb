package decode

import "bms-codec/internal/model"

// Options configures a decode run.
type Options struct {
	// MapName is the map name used until a DFHMDI label overrides it.
	MapName string
	// MapsetName is used when a DFHMSD statement has no label.
	MapsetName string
	// LegacyNames synthesizes FIELD_<line>_<column> instead of FIELDnn.
	LegacyNames bool
	// RawQuotes keeps doubled quotes inside literals as written.
	RawQuotes bool
	// Template supplies the size and device metadata the map starts with,
	// before any DFHMSD or DFHMDI statement is read. Nil means the model
	// defaults. Its fields are ignored.
	Template *model.Map
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MapName:    model.DefaultMapName,
		MapsetName: model.DefaultMapsetName,
	}
}

func (o Options) withDefaults() Options {
	if o.MapName == "" {
		o.MapName = model.DefaultMapName
	}

	if o.MapsetName == "" {
		o.MapsetName = model.DefaultMapsetName
	}

	return o
}

// newMap creates the map a decode run fills in.
func (o Options) newMap() *model.Map {
	if o.Template == nil {
		return model.NewMap(o.MapName, o.MapsetName)
	}

	m := o.Template.Clone()
	m.Name = o.MapName
	m.MapsetName = o.MapsetName
	m.Fields = nil
	m.Title = ""

	return m
}
