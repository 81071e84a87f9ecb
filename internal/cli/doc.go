// Package cli implements the bms-codec command line: global flag parsing,
// logger construction and the decode, encode, validate and fmt commands.
package cli
