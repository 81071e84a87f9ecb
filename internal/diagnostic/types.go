package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"bms-codec/internal/common"
)

// Diagnostics holds all diagnostic information from a decode or validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Map names the map this relates to (if any).
	Map string
	// Field names the field this relates to (if any).
	Field string
	// Line is the 1-based source line this relates to, 0 when not tied to source text.
	Line int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add records d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, mapName, field string) {
	d.Add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Map:      mapName,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, mapName, field string) {
	d.Add(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Map:      mapName,
		Field:    field,
	})
}

// AddLineWarning adds a warning tied to a source line.
func (d *Diagnostics) AddLineWarning(code, message string, line int, suggestions ...string) {
	d.Add(Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Line:        line,
		Suggestions: suggestions,
	})
}

// AddLineInfo adds an informational note tied to a source line.
func (d *Diagnostics) AddLineInfo(code, message string, line int) {
	d.Add(Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Count returns the number of errors and warnings.
func (d *Diagnostics) Count() int {
	return len(d.Errors) + len(d.Warnings)
}

// Messages returns the plain messages of the error diagnostics, in order.
func (d *Diagnostics) Messages() []string {
	out := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		out = append(out, e.Message)
	}

	return out
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Map != "" {
		prefix = append(prefix, "["+d.Map+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
