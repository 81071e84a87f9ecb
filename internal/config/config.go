package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"bms-codec/internal/common"
	"bms-codec/internal/decode"
	"bms-codec/internal/model"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "bms.hcl"

// Config holds the resolved settings.
type Config struct {
	Mapset  Mapset
	Decoder Decoder
	Log     Log
}

// Mapset holds the DFHMSD defaults for maps that do not carry their own.
type Mapset struct {
	Name    string
	Mode    string
	Lang    string
	Term    string
	Storage string
	Ctrl    []string
}

// Decoder holds the decode.Options settings.
type Decoder struct {
	MapName     string
	LegacyNames bool
	RawQuotes   bool
}

// Log selects the slog level and handler.
type Log struct {
	Level  string
	Format string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mapset: Mapset{
			Name:    model.DefaultMapsetName,
			Mode:    model.DefaultMode,
			Lang:    model.DefaultLang,
			Term:    model.DefaultTerm,
			Storage: model.DefaultStorage,
			Ctrl:    slices.Clone(model.DefaultCtrl),
		},
		Decoder: Decoder{MapName: model.DefaultMapName},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// fileRoot mirrors the file layout. Pointers mark optional values.
type fileRoot struct {
	Mapset  *mapsetBlock  `hcl:"mapset,block"`
	Decoder *decoderBlock `hcl:"decoder,block"`
	Log     *logBlock     `hcl:"log,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

type mapsetBlock struct {
	Name    *string  `hcl:"name,optional"`
	Mode    *string  `hcl:"mode,optional"`
	Lang    *string  `hcl:"lang,optional"`
	Term    *string  `hcl:"term,optional"`
	Storage *string  `hcl:"storage,optional"`
	Ctrl    []string `hcl:"ctrl,optional"`
}

type decoderBlock struct {
	MapName     *string `hcl:"map_name,optional"`
	LegacyNames *bool   `hcl:"legacy_names,optional"`
	RawQuotes   *bool   `hcl:"raw_quotes,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads the configuration at path. An empty path means DefaultPath,
// which may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(src, path, os.Environ())
}

// Parse decodes HCL source. environ is a list of KEY=VALUE pairs exposed
// as env.KEY.
func Parse(src []byte, filename string, environ []string) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot

	diags = gohcl.DecodeBody(file.Body, evalContext(environ), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	root.apply(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(env)},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

func (r *fileRoot) apply(cfg *Config) {
	if b := r.Mapset; b != nil {
		set(&cfg.Mapset.Name, b.Name)
		set(&cfg.Mapset.Mode, b.Mode)
		set(&cfg.Mapset.Lang, b.Lang)
		set(&cfg.Mapset.Term, b.Term)
		set(&cfg.Mapset.Storage, b.Storage)

		if b.Ctrl != nil {
			cfg.Mapset.Ctrl = b.Ctrl
		}
	}

	if b := r.Decoder; b != nil {
		set(&cfg.Decoder.MapName, b.MapName)

		if b.LegacyNames != nil {
			cfg.Decoder.LegacyNames = *b.LegacyNames
		}

		if b.RawQuotes != nil {
			cfg.Decoder.RawQuotes = *b.RawQuotes
		}
	}

	if b := r.Log; b != nil {
		set(&cfg.Log.Level, b.Level)
		set(&cfg.Log.Format, b.Format)
	}
}

func set(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func (c *Config) validate() error {
	if !model.IsValidName(c.Mapset.Name) {
		return fmt.Errorf("mapset.name %q is not a valid BMS name", c.Mapset.Name)
	}

	if !model.IsValidName(c.Decoder.MapName) {
		return fmt.Errorf("decoder.map_name %q is not a valid BMS name", c.Decoder.MapName)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be 'text' or 'json'", c.Log.Format)
	}

	return nil
}

// DecodeOptions derives the decoder options.
func (c *Config) DecodeOptions() decode.Options {
	return decode.Options{
		MapName:     c.Decoder.MapName,
		MapsetName:  c.Mapset.Name,
		LegacyNames: c.Decoder.LegacyNames,
		RawQuotes:   c.Decoder.RawQuotes,
		Template:    c.MapTemplate(),
	}
}

// MapTemplate returns an empty map carrying the configured names and mapset
// metadata. Decoding and importing start from it.
func (c *Config) MapTemplate() *model.Map {
	m := model.NewMap(c.Decoder.MapName, c.Mapset.Name)
	m.Mode = common.Upper(c.Mapset.Mode)
	m.Lang = common.Upper(c.Mapset.Lang)
	m.Term = common.Upper(c.Mapset.Term)
	m.Storage = common.Upper(c.Mapset.Storage)

	for _, ctrl := range c.Mapset.Ctrl {
		m.Ctrl = append(m.Ctrl, common.Upper(ctrl))
	}

	return m
}
