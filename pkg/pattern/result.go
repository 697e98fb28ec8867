package pattern

import (
	"strconv"
	"strings"
)

// Group is one capture group of a match. Groups[0] is the whole match.
type Group struct {
	Text    string
	Start   int
	End     int
	Matched bool
}

// Result describes a single match.
type Result struct {
	// Index is the byte offset of the match in Input.
	Index  int
	Input  string
	Groups []Group
}

func newResult(s string, loc []int) *Result {
	groups := make([]Group, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			groups[i] = Group{Start: -1, End: -1}
			continue
		}
		groups[i] = Group{Text: s[start:end], Start: start, End: end, Matched: true}
	}
	return &Result{Index: loc[0], Input: s, Groups: groups}
}

// String returns the matched text.
func (r *Result) String() string {
	if r == nil || len(r.Groups) == 0 {
		return ""
	}
	return r.Groups[0].Text
}

// Group returns the text of capture group n, or "" when the group is out
// of range or did not participate.
func (r *Result) Group(n int) string {
	if r == nil || n < 0 || n >= len(r.Groups) {
		return ""
	}
	return r.Groups[n].Text
}

// Strings returns the full match followed by every capture group.
func (r *Result) Strings() []string {
	out := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.Text
	}
	return out
}

// expand builds the substitution for one match.
func (r *Regex) expand(repl, s string, loc []int) string {
	if !strings.Contains(repl, "$") {
		return repl
	}

	ngroups := len(loc)/2 - 1
	group := func(n int) string {
		if loc[2*n] < 0 {
			return ""
		}
		return s[loc[2*n]:loc[2*n+1]]
	}

	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '$' || i+1 == len(repl) {
			b.WriteByte(c)
			continue
		}

		next := repl[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i++
		case next == '&':
			b.WriteString(s[loc[0]:loc[1]])
			i++
		case next == '`':
			b.WriteString(s[:loc[0]])
			i++
		case next == '\'':
			b.WriteString(s[loc[1]:])
			i++
		case isDigit(next):
			// Prefer a two-digit reference when that group exists.
			if i+2 < len(repl) && isDigit(repl[i+2]) {
				if n, _ := strconv.Atoi(repl[i+1 : i+3]); n >= 1 && n <= ngroups {
					b.WriteString(group(n))
					i += 2
					continue
				}
			}
			if n := int(next - '0'); n >= 1 && n <= ngroups {
				b.WriteString(group(n))
				i++
				continue
			}
			b.WriteByte(c)
		case next == '<':
			end := strings.IndexByte(repl[i+2:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			name := repl[i+2 : i+2+end]
			n := r.eng.groupIndex(name)
			if n <= 0 || n > ngroups {
				b.WriteByte(c)
				continue
			}
			b.WriteString(group(n))
			i += 2 + end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
