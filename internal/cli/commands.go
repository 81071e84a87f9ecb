package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"bms-codec/internal/decode"
	"bms-codec/internal/diagnostic"
	"bms-codec/internal/diff"
	"bms-codec/internal/encode"
	"bms-codec/internal/model"
	"bms-codec/internal/project"
	"bms-codec/internal/validate"
)

const filePerm = 0o644

// Output formats of the decode command.
const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatDump = "dump"
)

func runDecode(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("decode")
	outFlag := fs.String("o", "", "Write the project document to this file instead of stdout.")
	formatFlag := fs.String("format", "", "Output format: 'yaml', 'json' or 'dump'. Defaults to the -o extension, else yaml.")

	path, err := a.singleFile(fs, args)
	if err != nil {
		return err
	}

	format := strings.ToLower(*formatFlag)
	if format == "" {
		format = formatYAML
		if *outFlag != "" && project.FormatFor(*outFlag) == project.FormatJSON {
			format = formatJSON
		}
	}

	if format != formatYAML && format != formatJSON && format != formatDump {
		return usageError("decode: invalid -format %q: must be 'yaml', 'json' or 'dump'", format)
	}

	m, err := a.decodeFile(path)
	if err != nil {
		return err
	}

	var data []byte

	switch format {
	case formatDump:
		data = []byte(spew.Sdump(m))
	default:
		p := model.NewProject(m.Name)
		p.AddMap(m)

		pf := project.FormatYAML
		if format == formatJSON {
			pf = project.FormatJSON
		}

		data, err = project.Marshal(project.FromProject(p), pf)
		if err != nil {
			return err
		}
	}

	return a.output(*outFlag, data)
}

func runEncode(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("encode")
	mapFlag := fs.String("map", "", "Encode only the map with this name.")
	outFlag := fs.String("o", "", "Write the single selected map to this file.")
	dirFlag := fs.String("dir", "", "Write one <MAP>.bms file per map into this directory.")

	path, err := a.singleFile(fs, args)
	if err != nil {
		return err
	}

	if *outFlag != "" && *dirFlag != "" {
		return usageError("encode: -o and -dir are mutually exclusive")
	}

	p, err := project.Load(path, a.cfg.MapTemplate())
	if err != nil {
		return err
	}

	a.report(path, validate.ValidateProject(p))

	maps := p.Maps
	if *mapFlag != "" {
		m := p.Map(*mapFlag)
		if m == nil {
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("encode: map %q not found in %s", *mapFlag, path)}
		}

		maps = []*model.Map{m}
	}

	if *outFlag != "" && len(maps) != 1 {
		return usageError("encode: -o needs exactly one map, %s has %d (use -map or -dir)", path, len(maps))
	}

	files, err := encode.EncodeAll(ctx, maps)
	if err != nil {
		return err
	}

	a.logger.Info("Encoded maps.", "file", path, "maps", len(files))

	switch {
	case *dirFlag != "":
		return encode.WriteFiles(files, *dirFlag)
	case *outFlag != "":
		return a.output(*outFlag, files[0].Content)
	default:
		var buf bytes.Buffer
		for _, f := range files {
			buf.Write(f.Content)
		}

		return a.output("", buf.Bytes())
	}
}

func runValidate(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("validate")

	path, err := a.singleFile(fs, args)
	if err != nil {
		return err
	}

	var res *diagnostic.Diagnostics

	if isSource(path) {
		m, err := a.decodeFile(path)
		if err != nil {
			return err
		}

		res = validate.Validate(m)
	} else {
		p, err := project.Load(path, a.cfg.MapTemplate())
		if err != nil {
			return err
		}

		res = validate.ValidateProject(p)
	}

	for _, d := range res.All() {
		fmt.Fprintf(a.stdout, "%s: %s: %s\n", path, d.Severity, d)
	}

	if res.HasErrors() {
		return &ExitError{
			Code:    ExitFailure,
			Message: fmt.Sprintf("%s: %d violation(s), %d warning(s)", path, len(res.Errors), len(res.Warnings)),
		}
	}

	a.logger.Info("Validation passed.", "file", path, "warnings", len(res.Warnings))

	return nil
}

func runFmt(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("fmt")
	writeFlag := fs.Bool("w", false, "Write the result back to the source file.")
	diffFlag := fs.Bool("diff", false, "Print a unified diff instead of the formatted source.")

	path, err := a.singleFile(fs, args)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := a.decode(path, string(src))
	out := encode.Encode(m)

	if *diffFlag {
		fmt.Fprint(a.stdout, diff.Unified(path, path+" (formatted)", string(src), out, diff.Options{}))
	}

	if *writeFlag {
		if string(src) == out {
			a.logger.Debug("Already formatted.", "file", path)
			return nil
		}

		if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		a.logger.Info("Formatted.", "file", path)

		return nil
	}

	if !*diffFlag {
		fmt.Fprint(a.stdout, out)
	}

	return nil
}

// decodeFile reads and decodes a BMS source file.
func (a *app) decodeFile(path string) (*model.Map, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return a.decode(path, string(src)), nil
}

// decode decodes src with the configured options. The map is named after
// the file unless the source labels its DFHMDI statement.
func (a *app) decode(path, src string) *model.Map {
	if !decode.LooksLikeBMS(src) {
		a.logger.Warn("File does not look like BMS source.", "file", path)
	}

	opts := a.cfg.DecodeOptions()
	opts.MapName = model.SanitizeName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), opts.MapName)

	m, diags := decode.DecodeReport(src, opts)
	for _, d := range diags.All() {
		a.logger.Debug("Decoder note.", "file", path, "line", d.Line, "code", d.Code, "message", d.Message)
	}

	a.logger.Debug("Decoded map.", "file", path, "map", m.Name, "fields", len(m.Fields), "diagnostics", diags.Count())

	return m
}

// report logs validation results without failing.
func (a *app) report(path string, res *diagnostic.Diagnostics) {
	for _, d := range res.Errors {
		a.logger.Warn("Validation violation.", "file", path, "diagnostic", d.String())
	}

	for _, d := range res.Warnings {
		a.logger.Info("Validation warning.", "file", path, "diagnostic", d.String())
	}
}

// output writes data to path, or to stdout when path is empty.
func (a *app) output(path string, data []byte) error {
	if path == "" {
		_, err := a.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.logger.Info("Wrote file.", "file", path, "bytes", len(data))

	return nil
}

// isSource reports whether path names BMS source rather than a project document.
func isSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return false
	default:
		return true
	}
}
