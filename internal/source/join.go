package source

import "strings"

// joiner accumulates parameter fragments of a continued statement.
type joiner struct {
	buf   string
	quote rune // delimiter of the open literal, 0 when outside quotes
}

// add appends one fragment. Outside a literal, fragments are trimmed and
// separated by a comma unless one is already adjacent. Inside an open literal
// the fragment is appended verbatim, so literals split across lines keep
// their blanks. A fragment starting with the delimiter that closed the
// previous one completes a doubled quote and is appended verbatim as well.
func (j *joiner) add(frag string, first bool) {
	if j.quote == 0 && !j.splitQuote(frag) {
		frag = strings.TrimLeft(frag, " ")
		if frag == "" {
			return
		}

		if !first && j.buf != "" && !strings.HasSuffix(j.buf, ",") && !strings.HasPrefix(frag, ",") {
			j.buf += ","
		}
	}

	j.quote = ScanQuote(frag, j.quote)
	j.buf += frag

	if j.quote == 0 {
		j.buf = strings.TrimRight(j.buf, " ")
	}
}

// splitQuote reports whether the buffer ends with a literal closed by its
// very last character and frag reopens it with the same delimiter.
func (j *joiner) splitQuote(frag string) bool {
	if j.buf == "" || frag == "" {
		return false
	}

	last := j.buf[len(j.buf)-1]
	if (last != '\'' && last != '"') || frag[0] != last {
		return false
	}

	return ScanQuote(j.buf[:len(j.buf)-1], 0) == rune(last)
}

func (j *joiner) String() string {
	return j.buf
}

// ScanQuote returns the literal state after reading s, starting in state
// open: the delimiter of the literal s ends inside, or 0. A doubled delimiter
// inside a literal toggles twice and so stays inside it.
func ScanQuote(s string, open rune) rune {
	for _, r := range s {
		switch {
		case open == 0 && (r == '\'' || r == '"'):
			open = r
		case open != 0 && r == open:
			open = 0
		}
	}

	return open
}

// quoteOpen reports whether s ends inside a quoted literal.
func quoteOpen(s string) bool {
	return ScanQuote(s, 0) != 0
}
