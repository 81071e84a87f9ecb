package encode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bms-codec/internal/source"
)

// reserve is the room kept free on the first line of a continued statement
// when pulling further parameters onto it: a param joins the line while the
// line length plus the param plus reserve stays within LineWidth.
const reserve = 12

// statement is one macro call before line packing.
type statement struct {
	label   string
	keyword source.Keyword
	params  []string
	// head is the number of leading params always kept on the first line.
	head int
	// greedy pulls further params onto the first line while reserve stays free.
	greedy bool
	// split forces a continuation even when the statement fits one line.
	split bool
}

// lines packs the statement into physical lines.
func (s statement) lines() []string {
	prefix := fmt.Sprintf("%-8s %-6s ", s.label, s.keyword)

	single := prefix + strings.Join(s.params, ",")
	if !s.split && width(single) <= source.LineWidth {
		return []string{single}
	}

	p := &packer{}
	p.line.WriteString(prefix)
	p.n = width(prefix)
	p.start = p.n

	for i, param := range s.params {
		last := i == len(s.params)-1

		switch {
		case p.empty(), i < s.head:
		case p.first() && s.greedy && p.n+width(param)+reserve <= source.LineWidth:
		case !p.first() && p.fits(param, last):
		default:
			p.breakLine()
		}

		p.place(param, last)
	}

	return p.finish()
}

// packer accumulates physical lines.
type packer struct {
	out  []string
	line strings.Builder
	// n is the current line width in columns; start is where params begin.
	n, start int
	// comma is set when a line was closed without room for its trailing comma.
	comma bool
}

func (p *packer) empty() bool {
	return p.n == p.start
}

func (p *packer) first() bool {
	return len(p.out) == 0
}

// fits reports whether param can follow on the current line, keeping room for
// the trailing comma when more params follow.
func (p *packer) fits(param string, last bool) bool {
	limit := source.LineWidth
	if !last {
		limit--
	}

	return p.n+1+width(param) <= limit
}

func (p *packer) write(s string) {
	p.line.WriteString(s)
	p.n += width(s)
}

// breakLine closes the current line with a comma and the continuation marker
// in column 72, then starts a continuation line.
func (p *packer) breakLine() {
	if p.n < source.LineWidth {
		p.write(",")
	} else {
		p.comma = true
	}

	p.mark()
}

// mark pads the current line, puts the marker in column 72 and starts a
// continuation line. The padding is only ever added outside literals.
func (p *packer) mark() {
	p.write(strings.Repeat(" ", max(0, source.LineWidth-p.n)))
	p.write("*")
	p.out = append(p.out, p.line.String())

	p.line.Reset()
	p.n = 0
	p.write(strings.Repeat(" ", source.ContinuationIndent))
	p.start = p.n
}

// place appends param to the current line, splitting a quoted literal that
// runs past column 71.
func (p *packer) place(param string, last bool) {
	sep := ""
	if !p.empty() || p.comma {
		sep = ","
	}

	limit := source.LineWidth
	if !last {
		limit--
	}

	quote := strings.IndexAny(param, `'"`)
	if p.n+width(sep+param) <= limit || quote < 0 {
		p.write(sep + param)
		p.comma = false

		return
	}

	// The opening delimiter and at least one character must fit, otherwise
	// the literal starts on a fresh line.
	if p.n+width(sep)+utf8.RuneCountInString(param[:quote])+2 > source.LineWidth && !p.empty() {
		p.breakLine()
		p.place(param, last)

		return
	}

	p.write(sep)
	p.comma = false

	rest := []rune(param)
	for {
		room := source.LineWidth - p.n
		if len(rest) <= room {
			p.write(string(rest))
			return
		}

		p.write(string(rest[:room]))
		rest = rest[room:]
		p.mark()
	}
}

func (p *packer) finish() []string {
	return append(p.out, strings.TrimRight(p.line.String(), " "))
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}
