package project

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bms-codec/internal/common"
)

// Document is the root of an interchange file.
type Document struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Maps        []MapDoc `json:"maps"                  yaml:"maps"`
}

// MapDoc is the interchange form of one map.
type MapDoc struct {
	Name       string        `json:"name"              yaml:"name"`
	MapsetName string        `json:"mapset_name"       yaml:"mapset_name"`
	Size       []int         `json:"size,omitempty"    yaml:"size,omitempty,flow"`
	Lang       string        `json:"lang,omitempty"    yaml:"lang,omitempty"`
	Mode       string        `json:"mode,omitempty"    yaml:"mode,omitempty"`
	Term       string        `json:"term,omitempty"    yaml:"term,omitempty"`
	Ctrl       StringOrArray `json:"ctrl,omitempty"    yaml:"ctrl,omitempty,flow"`
	Storage    string        `json:"storage,omitempty" yaml:"storage,omitempty"`
	Title      string        `json:"title,omitempty"   yaml:"title,omitempty"`
	Fields     []FieldDoc    `json:"fields"            yaml:"fields"`
}

// FieldDoc is the interchange form of one field. Position values are
// pointers so that an absent value can be told apart from zero.
type FieldDoc struct {
	Name         string        `json:"name"                    yaml:"name"`
	Line         *int          `json:"line,omitempty"          yaml:"line,omitempty"`
	Column       *int          `json:"column,omitempty"        yaml:"column,omitempty"`
	Length       *int          `json:"length,omitempty"        yaml:"length,omitempty"`
	FieldType    string        `json:"field_type,omitempty"    yaml:"field_type,omitempty"`
	InitialValue string        `json:"initial_value,omitempty" yaml:"initial_value,omitempty"`
	Attributes   StringOrArray `json:"attributes,omitempty"    yaml:"attributes,omitempty,flow"`
	PicIn        string        `json:"picin,omitempty"         yaml:"picin,omitempty"`
	PicOut       string        `json:"picout,omitempty"        yaml:"picout,omitempty"`
	Color        string        `json:"color,omitempty"         yaml:"color,omitempty"`
	Hilight      string        `json:"hilight,omitempty"       yaml:"hilight,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = single(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or list of strings, got %v", node.Tag)
	}
}

// UnmarshalJSON implements custom JSON unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = single(str)
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}

	*s = arr

	return nil
}

func single(str string) StringOrArray {
	if str == "" {
		return StringOrArray{}
	}

	return StringOrArray{str}
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
