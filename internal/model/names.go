package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var validName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Patterns of names that editors and the decoder synthesize. Fields with such
// names are written without a label.
var autoNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^FIELD\d{2}$`),
	regexp.MustCompile(`^CAMPO\d{2}$`),
	regexp.MustCompile(`^FIELD_\d+_\d+$`),
	regexp.MustCompile(`^(UNNAMED|FIELD|CAMPO)$`),
	regexp.MustCompile(`^AUTO_[A-Z0-9_]{1,3}$`),
	regexp.MustCompile(`^GEN_[A-Z0-9_]{1,4}$`),
}

// IsValidName reports whether s is a valid BMS symbol: a letter followed by
// letters or digits, at most MaxNameLen characters.
func IsValidName(s string) bool {
	return len(s) <= MaxNameLen && validName.MatchString(s)
}

// IsAutoName reports whether s looks like a synthesized placeholder rather
// than a meaningful BMS symbol.
func IsAutoName(s string) bool {
	for _, re := range autoNamePatterns {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

// IsLabelName reports whether a source label can be used as a field name
// as is. It is more tolerant than IsValidName: '_' and '-' are accepted and
// the first character may be a digit.
func IsLabelName(s string) bool {
	if s == "" || len(s) > MaxNameLen {
		return false
	}

	stripped := strings.NewReplacer("_", "", "-", "").Replace(s)
	if stripped == "" {
		return false
	}

	for _, r := range stripped {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}

	return true
}

// SanitizeName turns an arbitrary string (typically a file name) into a
// valid BMS symbol, or returns fallback when nothing usable remains.
func SanitizeName(s, fallback string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	clean := b.String()
	if clean == "" {
		return fallback
	}

	if clean[0] < 'A' || clean[0] > 'Z' {
		clean = "M" + clean
	}

	if len(clean) > MaxNameLen {
		clean = clean[:MaxNameLen]
	}

	return clean
}

// UniqueFieldName returns a <base>NN name (NN from 01 to 99) that no field
// of m uses, trying start first and counting up, then wrapping to 01. The
// second result is false when all 99 are taken.
func UniqueFieldName(m *Map, base string, start int) (string, bool) {
	if start < 1 || start > 99 {
		start = 1
	}

	for i := range 99 {
		candidate := fmt.Sprintf("%s%02d", base, (start-1+i)%99+1)
		if !m.HasFieldName(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// PositionName returns the legacy placeholder FIELD_<line>_<column>.
func PositionName(line, column int) string {
	return fmt.Sprintf("FIELD_%d_%d", line, column)
}
