// Package source splits BMS source text into typed directive records.
//
// BMS is written in fixed columns:
//
//	columns 1-9    label
//	columns 10-15  DFHMSD, DFHMDI or DFHMDF
//	columns 16-71  parameters
//	column  72     continuation marker ('*' or '-')
//
// Scan reads physical lines, drops comments, recognizes the fixed-column and
// the compact ("DFHMDF POS=...") forms, and joins continuation lines into a
// single Directive per statement. Params then tokenizes the parameter string
// into KEY=value pairs, honoring quoted literals and parenthesized lists.
package source
