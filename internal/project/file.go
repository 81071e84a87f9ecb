package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bms-codec/internal/model"
)

// Format is an interchange encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

const filePerm = 0o644

// FormatFor selects the format from a file extension: ".json" is JSON,
// anything else YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// LoadFile loads and parses an interchange file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	doc, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse project JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse project YAML: %w", err)
		}
	}

	return &doc, nil
}

// Marshal serializes a document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal project JSON: %w", err)
		}

		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal project YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal project YAML: %w", err)
		}

		return buf.Bytes(), nil
	}
}

// WriteFile writes a document to path in the format its extension selects.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc, FormatFor(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", path, err)
	}

	return nil
}

// Load reads a project file and converts it, taking missing values from
// template (see ToProject).
func Load(path string, template *model.Map) (*model.Project, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return ToProject(doc, template), nil
}

// Save writes p to path.
func Save(p *model.Project, path string) error {
	return WriteFile(FromProject(p), path)
}
