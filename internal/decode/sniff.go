package decode

import (
	"strings"
)

// minIndicators is the score at which text without any directive keyword is
// still taken for BMS source.
const minIndicators = 3

// indicatorGroups each add one point per line when any of their patterns occurs.
var indicatorGroups = [][]string{
	{"POS="},
	{"LENGTH="},
	{"ATTRB="},
	{"INITIAL="},
	{"PICIN=", "PICOUT="},
	{"TYPE=&SYSPARM", "MODE=INOUT", "MODE=IN", "MODE=OUT", "LANG=COBOL", "LANG=PLI", "CTRL=", "SIZE="},
	{"COLOR=", "HILIGHT="},
}

// LooksLikeBMS reports whether text appears to be BMS source. It is a cheap
// content sniff for callers about to decode an arbitrary file; Decode itself
// accepts anything.
func LooksLikeBMS(text string) bool {
	score := 0

	for line := range strings.Lines(text) {
		upper := strings.ToUpper(strings.TrimSpace(line))
		if upper == "" || strings.HasPrefix(upper, "*") {
			continue
		}

		for _, kw := range []string{"DFHMSD", "DFHMDI", "DFHMDF"} {
			if strings.Contains(upper, kw) {
				return true
			}
		}

		for _, group := range indicatorGroups {
			for _, p := range group {
				if strings.Contains(upper, p) {
					score++
					break
				}
			}
		}
	}

	return score >= minIndicators
}
