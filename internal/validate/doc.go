// Package validate checks a model.Map against the structural rules of BMS
// screen definitions.
//
// Errors are the violations: names, screen size, field positions and
// lengths, and name uniqueness. Warnings flag maps that still encode but
// probably do not display as intended, such as overlapping fields. Validation
// never mutates its input.
package validate
