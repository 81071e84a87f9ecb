package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bms-codec/internal/model"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bms.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
decoder {
  legacy_names = true
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Decoder.LegacyNames)
	assert.Equal(t, model.DefaultMapName, cfg.Decoder.MapName)
}

func TestParse_AllBlocks(t *testing.T) {
	src := `
mapset {
  name    = "CUSTSET"
  mode    = "out"
  lang    = "PLI"
  term    = "3270-2"
  storage = "AUTO"
  ctrl    = ["FREEKB"]
}

decoder {
  map_name     = "CUSTMAP"
  legacy_names = false
  raw_quotes   = true
}

log {
  level  = "debug"
  format = "json"
}
`

	cfg, err := Parse([]byte(src), "test.hcl", nil)
	require.NoError(t, err)

	assert.Equal(t, Mapset{
		Name: "CUSTSET", Mode: "out", Lang: "PLI", Term: "3270-2", Storage: "AUTO",
		Ctrl: []string{"FREEKB"},
	}, cfg.Mapset)
	assert.Equal(t, Decoder{MapName: "CUSTMAP", RawQuotes: true}, cfg.Decoder)
	assert.Equal(t, Log{Level: "debug", Format: "json"}, cfg.Log)

	opts := cfg.DecodeOptions()
	assert.Equal(t, "CUSTMAP", opts.MapName)
	assert.Equal(t, "CUSTSET", opts.MapsetName)
	assert.True(t, opts.RawQuotes)
	require.NotNil(t, opts.Template)
	assert.Equal(t, "OUT", opts.Template.Mode)
	assert.Equal(t, []string{"FREEKB"}, opts.Template.Ctrl)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`mapset { lang = "PLI" }`), "test.hcl", nil)
	require.NoError(t, err)

	want := Default()
	want.Mapset.Lang = "PLI"
	assert.Equal(t, want, cfg)
}

func TestParse_Env(t *testing.T) {
	src := `
mapset {
  name = upper(env.BMS_MAPSET)
}

decoder {
  map_name = format("%s01", lower(env.BMS_PREFIX))
}
`

	cfg, err := Parse([]byte(src), "test.hcl", []string{"BMS_MAPSET=orders", "BMS_PREFIX=ORD", "OTHER=x=y"})
	require.NoError(t, err)
	assert.Equal(t, "ORDERS", cfg.Mapset.Name)
	assert.Equal(t, "ord01", cfg.Decoder.MapName)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{name: "syntax", src: `mapset {`, msg: "failed to parse HCL file"},
		{name: "unknown attribute", src: `mapset { colour = "RED" }`, msg: "failed to decode HCL file"},
		{name: "wrong type", src: `decoder { legacy_names = "maybe" }`, msg: "failed to decode HCL file"},
		{name: "missing env", src: `mapset { name = env.NOPE }`, msg: "failed to decode HCL file"},
		{name: "bad name", src: `mapset { name = "1SET" }`, msg: "not a valid BMS name"},
		{name: "bad level", src: `log { level = "loud" }`, msg: "invalid log.level"},
		{name: "bad format", src: `log { format = "xml" }`, msg: "invalid log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMapTemplate(t *testing.T) {
	cfg := Default()
	m := cfg.MapTemplate()

	assert.Equal(t, model.DefaultMapName, m.Name)
	assert.Equal(t, model.DefaultMapsetName, m.MapsetName)
	assert.Equal(t, model.DefaultCtrl, m.Ctrl)
	assert.Empty(t, m.Fields)
}
