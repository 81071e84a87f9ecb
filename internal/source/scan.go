package source

import (
	"regexp"
	"strings"
)

// Keyword is one of the three BMS definition macros.
type Keyword string

const (
	KeywordMapset Keyword = "DFHMSD"
	KeywordMap    Keyword = "DFHMDI"
	KeywordField  Keyword = "DFHMDF"
)

// Column layout, as 0-based string indexes.
const (
	labelEnd    = 9  // label is columns 1-9
	keywordEnd  = 16 // keyword is columns 10-16
	paramsStart = 16
	paramsEnd   = 71 // parameters end at column 71
	markerIndex = 71 // continuation marker is column 72
	contStart   = 15 // continuation text resumes at column 16
	tabWidth    = 8
)

// LineWidth is the last column available for statement text.
const LineWidth = paramsEnd

// ContinuationIndent is the number of blank columns before continuation text.
const ContinuationIndent = contStart

// LabelWidth is the number of columns reserved for the label, including the
// separating blank.
const LabelWidth = labelEnd

// Assembler statements that may appear in BMS sources and carry nothing the
// codec needs.
var ignoredOps = map[string]struct{}{
	"END":   {},
	"PRINT": {},
	"EJECT": {},
	"SPACE": {},
	"TITLE": {},
	"COPY":  {},
	"PUNCH": {},
}

var titleComment = regexp.MustCompile(`^\*\s*TITLE:\s?(.*)$`)

// Directive is one logical BMS statement after continuation joining.
type Directive struct {
	// Label is the trimmed label, empty when absent.
	Label string
	// Keyword identifies the macro.
	Keyword Keyword
	// Params is the joined parameter string, without continuation markers.
	Params string
	// Continued is true when the statement spanned more than one physical line.
	Continued bool
	// Line is the 1-based physical line where the statement starts.
	Line int
}

// Line is a physical source line that could not be interpreted.
type Line struct {
	Number int
	Text   string
}

// Result is the outcome of Scan.
type Result struct {
	Directives []Directive
	// Title is the text of the first "* TITLE:" comment, if any.
	Title string
	// Malformed lists lines that matched neither statement form.
	Malformed []Line
}

// Scan splits text into directives. It never fails: lines it cannot
// interpret are recorded in Result.Malformed and skipped.
func Scan(text string) *Result {
	res := &Result{}
	lines := splitLines(text)

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line.blank(0) {
			continue
		}

		if line[0] == '*' {
			if m := titleComment.FindStringSubmatch(line.String()); m != nil && res.Title == "" {
				res.Title = strings.TrimSpace(m[1])
			}

			continue
		}

		d, continued, ok := parseLine(line)
		if !ok {
			if !isIgnoredOp(line.String()) {
				res.Malformed = append(res.Malformed, Line{Number: i + 1, Text: line.String()})
			}

			continue
		}

		d.Line = i + 1

		var j joiner

		j.add(d.Params, true)

		for continued && i+1 < len(lines) && lines[i+1].isContinuation() {
			i++
			next := lines[i]
			j.add(next.cols(contStart, paramsEnd), false)

			continued = next.hasMarker()
			d.Continued = true
		}

		d.Params = j.String()
		res.Directives = append(res.Directives, d)
	}

	return res
}

// parseLine recognizes a single physical line. It returns the directive with
// its raw parameter text and whether a continuation marker was found.
func parseLine(line physLine) (Directive, bool, bool) {
	if len(line) < len(KeywordField) {
		return Directive{}, false, false
	}

	// Fixed-column form.
	if len(line) >= contStart {
		kw := strings.TrimSpace(line.cols(labelEnd, keywordEnd))
		if isKeyword(kw) {
			params := line.cols(paramsStart, paramsEnd)

			continued := line.hasMarker()
			if !continued {
				params, continued = stripLooseMarker(params)
			}

			return Directive{
				Label:   strings.TrimSpace(line.cols(0, labelEnd)),
				Keyword: Keyword(kw),
				Params:  params,
			}, continued, true
		}
	}

	return parseCompact(line)
}

// parseCompact handles statements that do not respect the columns:
// "DFHMDF POS=(1,1)" or "NAME DFHMDF POS=(1,1)".
func parseCompact(line physLine) (Directive, bool, bool) {
	content := line.String()
	continued := false

	if line.hasMarker() {
		content = line.cols(0, markerIndex)
		continued = true
	}

	label := ""
	rest := strings.TrimLeft(content, " ")

	kw, after := nextToken(rest)
	if !isKeyword(kw) {
		label = kw

		kw, after = nextToken(after)
		if label == "" || !isKeyword(kw) {
			return Directive{}, false, false
		}
	}

	rest = strings.TrimSpace(after)

	if !continued && (strings.HasSuffix(rest, "*") || strings.HasSuffix(rest, "-")) && !quoteOpen(rest[:len(rest)-1]) {
		rest = strings.TrimRight(rest[:len(rest)-1], " ")
		continued = true
	}

	return Directive{Label: label, Keyword: Keyword(kw), Params: rest}, continued, true
}

// nextToken returns the first blank-delimited token of s and the text after it.
func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " ")

	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}

	return s[:i], s[i:]
}

// stripLooseMarker accepts a '*' placed before column 72 when it is separated
// from the parameters by blanks, as hand-edited sources sometimes have it.
func stripLooseMarker(params string) (string, bool) {
	trimmed := strings.TrimRight(params, " ")
	if !strings.HasSuffix(trimmed, "*") {
		return params, false
	}

	body := trimmed[:len(trimmed)-1]
	if body == "" || body[len(body)-1] != ' ' || quoteOpen(body) {
		return params, false
	}

	return body, true
}

func isKeyword(s string) bool {
	switch Keyword(s) {
	case KeywordMapset, KeywordMap, KeywordField:
		return true
	default:
		return false
	}
}

func isIgnoredOp(line string) bool {
	fields := strings.Fields(line)
	for i, f := range fields {
		if i > 1 {
			break
		}

		if _, ok := ignoredOps[f]; ok {
			return true
		}
	}

	return false
}

// physLine is a physical source line indexed by column rather than by byte.
type physLine []rune

func (l physLine) String() string {
	return strings.TrimRight(string(l), " ")
}

// cols returns columns [from, to) as 0-based indexes, clamped to the line.
func (l physLine) cols(from, to int) string {
	if from >= len(l) {
		return ""
	}

	return string(l[from:min(len(l), to)])
}

// blank reports whether the line has no text from column index from on.
func (l physLine) blank(from int) bool {
	return strings.TrimSpace(l.cols(from, len(l))) == ""
}

func (l physLine) hasMarker() bool {
	return len(l) > markerIndex && (l[markerIndex] == '*' || l[markerIndex] == '-')
}

// isContinuation reports whether columns 1-15 are blank and text follows them.
func (l physLine) isContinuation() bool {
	if len(l) <= contStart {
		return false
	}

	return strings.TrimSpace(l.cols(0, contStart)) == "" && !l.blank(contStart)
}

// splitLines splits on newlines, drops carriage returns and expands tabs so
// that column positions are meaningful.
func splitLines(text string) []physLine {
	raw := strings.Split(text, "\n")
	out := make([]physLine, len(raw))

	for i, l := range raw {
		out[i] = expandTabs(strings.TrimRight(l, "\r"))
	}

	return out
}

func expandTabs(s string) physLine {
	out := make(physLine, 0, len(s))

	for _, r := range s {
		if r == '\t' {
			n := tabWidth - len(out)%tabWidth
			for range n {
				out = append(out, ' ')
			}

			continue
		}

		out = append(out, r)
	}

	return out
}
