// Package config loads the codec settings from an HCL file.
//
// Every block and attribute is optional; absent values keep the defaults of
// Default. Expressions may refer to the process environment as env.<NAME>
// and call a few string functions (upper, lower, format).
package config
