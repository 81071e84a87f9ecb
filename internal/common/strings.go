package common

import "strings"

// UnknownStr is the String() result for values outside a closed set.
const UnknownStr = "unknown"

// Upper trims surrounding whitespace and uppercases s.
func Upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
