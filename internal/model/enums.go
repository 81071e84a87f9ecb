package model

import (
	"strings"
)

//go:generate go tool stringer -type=FieldType,Attribute -linecomment -output=enums_string.go

// FieldType classifies a field for editing purposes. It is not written to
// BMS source; the decoder infers it from the field parameters.
type FieldType int

const (
	_ FieldType = iota // zero value is invalid

	FieldLabel       // LABEL
	FieldInput       // INPUT
	FieldOutput      // OUTPUT
	FieldProtected   // PROTECTED
	FieldNumeric     // NUMERIC
	FieldUnprotected // UNPROTECTED

	// FieldTypeTotal is one past the last valid FieldType.
	FieldTypeTotal = int(iota)
)

// IsValid reports whether t is one of the declared field types.
func (t FieldType) IsValid() bool {
	return t > 0 && int(t) < FieldTypeTotal
}

// ParseFieldType maps a keyword such as "INPUT" to its FieldType.
func ParseFieldType(s string) (FieldType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t := FieldType(1); int(t) < FieldTypeTotal; t++ {
		if t.String() == s {
			return t, true
		}
	}

	return 0, false
}

// Attribute is one ATTRB keyword.
type Attribute int

const (
	_ Attribute = iota // zero value is invalid

	AttrAutoSkip     // ASKIP
	AttrProtected    // PROT
	AttrUnprotected  // UNPROT
	AttrNumeric      // NUM
	AttrBright       // BRT
	AttrNormal       // NORM
	AttrDark         // DRK
	AttrInsertCursor // IC
	AttrFieldSet     // FSET

	// AttributeTotal is one past the last valid Attribute.
	AttributeTotal = int(iota)
)

// IsValid reports whether a is one of the declared attributes.
func (a Attribute) IsValid() bool {
	return a > 0 && int(a) < AttributeTotal
}

// ParseAttribute maps an ATTRB keyword such as "UNPROT" to its Attribute.
func ParseAttribute(s string) (Attribute, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for a := Attribute(1); int(a) < AttributeTotal; a++ {
		if a.String() == s {
			return a, true
		}
	}

	return 0, false
}

// AttributeKeywords returns every ATTRB keyword in declaration order.
func AttributeKeywords() []string {
	out := make([]string, 0, AttributeTotal-1)
	for a := Attribute(1); int(a) < AttributeTotal; a++ {
		out = append(out, a.String())
	}

	return out
}

// AttributeSet is a set of attributes. The zero value is the empty set.
type AttributeSet uint16

// NewAttributeSet builds a set from the given attributes. Invalid values are ignored.
func NewAttributeSet(attrs ...Attribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s = s.With(a)
	}

	return s
}

// With returns a copy of s with a added.
func (s AttributeSet) With(a Attribute) AttributeSet {
	if !a.IsValid() {
		return s
	}

	return s | 1<<uint(a)
}

// Without returns a copy of s with a removed.
func (s AttributeSet) Without(a Attribute) AttributeSet {
	if !a.IsValid() {
		return s
	}

	return s &^ (1 << uint(a))
}

// Has reports whether a is in the set.
func (s AttributeSet) Has(a Attribute) bool {
	return a.IsValid() && s&(1<<uint(a)) != 0
}

// IsEmpty reports whether the set has no attributes.
func (s AttributeSet) IsEmpty() bool {
	return s == 0
}

// Slice returns the attributes in declaration order.
func (s AttributeSet) Slice() []Attribute {
	var out []Attribute
	for a := Attribute(1); int(a) < AttributeTotal; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}

	return out
}

// Keywords returns the ATTRB keywords of the set in declaration order.
func (s AttributeSet) Keywords() []string {
	attrs := s.Slice()
	out := make([]string, len(attrs))

	for i, a := range attrs {
		out[i] = a.String()
	}

	return out
}

// String returns the comma separated keyword list, e.g. "UNPROT,IC".
func (s AttributeSet) String() string {
	return strings.Join(s.Keywords(), ",")
}
