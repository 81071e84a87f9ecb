package source

import (
	"strconv"
	"strings"
)

// Param is one KEY=value operand of a statement. Value is kept raw: quotes
// and parentheses are still present.
type Param struct {
	Key   string
	Value string
}

// ParamList is the ordered operand list of a statement.
type ParamList []Param

// Params splits a parameter string at top-level commas, that is commas
// outside quoted literals and parentheses. Keys are uppercased. Operands
// without '=' are kept with an empty Value.
func Params(raw string) ParamList {
	var (
		out   ParamList
		depth int
		quote rune
		start int
	)

	flush := func(end int) {
		seg := strings.TrimSpace(raw[start:end])
		if seg != "" {
			out = append(out, splitParam(seg))
		}
	}

	for i, r := range raw {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			flush(i)
			start = i + 1
		}
	}

	flush(len(raw))

	return out
}

func splitParam(seg string) Param {
	eq := strings.IndexByte(seg, '=')
	if eq < 0 || quoteOpen(seg[:eq]) || strings.ContainsAny(seg[:eq], "(") {
		return Param{Key: strings.ToUpper(seg)}
	}

	return Param{
		Key:   strings.ToUpper(strings.TrimSpace(seg[:eq])),
		Value: strings.TrimSpace(seg[eq+1:]),
	}
}

// Get returns the value of the first operand called key.
func (l ParamList) Get(key string) (string, bool) {
	for _, p := range l {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Has reports whether an operand called key is present.
func (l ParamList) Has(key string) bool {
	_, ok := l.Get(key)
	return ok
}

// Unquote extracts the text of a quoted literal. With raw set, doubled
// delimiters are returned as written; otherwise they collapse into one. A
// value that is not quoted is returned as is, and a literal missing its
// closing delimiter runs to the end of the value.
func Unquote(value string, raw bool) string {
	if value == "" || (value[0] != '\'' && value[0] != '"') {
		return value
	}

	delim := value[0]

	var b strings.Builder

	for i := 1; i < len(value); i++ {
		c := value[i]
		if c != delim {
			b.WriteByte(c)
			continue
		}

		if i+1 < len(value) && value[i+1] == delim {
			b.WriteByte(c)

			if raw {
				b.WriteByte(c)
			}

			i++

			continue
		}

		break
	}

	return b.String()
}

// Quote wraps s in single quotes, doubling embedded single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// List returns the items of a parenthesized list "(a,b)" or the single bare
// item "a". Items are trimmed and empty items dropped.
func List(value string) []string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "(") {
		value = strings.TrimPrefix(value, "(")
		value = strings.TrimSuffix(value, ")")
	}

	var out []string

	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// Pair parses "(a,b)" into two integers.
func Pair(value string) (int, int, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "(") || !strings.HasSuffix(value, ")") {
		return 0, 0, false
	}

	items := List(value)
	if len(items) != 2 {
		return 0, 0, false
	}

	a, errA := strconv.Atoi(items[0])
	b, errB := strconv.Atoi(items[1])

	if errA != nil || errB != nil {
		return 0, 0, false
	}

	return a, b, true
}

// Int parses a decimal operand value.
func Int(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}

	return n, true
}
