package pattern

import (
	"fmt"
	"strings"
)

// Regex is a compiled pattern together with its flags.
//
// A global Regex carries a last-index cursor that Exec and Test advance,
// so a global Regex must not be shared between goroutines. Non-global
// patterns hold no mutable state.
type Regex struct {
	source    string
	flags     Flags
	kind      EngineKind
	eng       engine
	lastIndex int
}

// Compile compiles source with the given flag letters on the given engine.
func Compile(source, flags string, kind EngineKind) (*Regex, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, fmt.Errorf("invalid flags for /%s/: %w", source, err)
	}

	if kind == "" {
		kind = EngineECMA
	}
	eng, err := newEngine(kind, source, f)
	if err != nil {
		return nil, fmt.Errorf("failed to compile /%s/%s: %w", source, flags, err)
	}

	return &Regex{source: source, flags: f, kind: kind, eng: eng}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source, flags string, kind EngineKind) *Regex {
	re, err := Compile(source, flags, kind)
	if err != nil {
		panic(err)
	}
	return re
}

// Source returns the pattern text.
func (r *Regex) Source() string { return r.source }

// Flags returns the pattern's flags.
func (r *Regex) Flags() Flags { return r.flags }

// Engine returns the engine the pattern was compiled with.
func (r *Regex) Engine() EngineKind { return r.kind }

// LastIndex returns the byte offset the next global Exec starts from.
func (r *Regex) LastIndex() int { return r.lastIndex }

// SetLastIndex moves the global cursor. On the re2 engine a cursor that
// falls inside a match resumes at the next match of the sequence that
// starts at 0, not at the cursor itself.
func (r *Regex) SetLastIndex(i int) { r.lastIndex = i }

// String formats the pattern as /source/flags.
func (r *Regex) String() string {
	return "/" + r.source + "/" + r.flags.String()
}

// Test reports whether s contains a match. On a global Regex it advances
// the cursor exactly like Exec.
func (r *Regex) Test(s string) bool {
	return r.Exec(s) != nil
}

// Exec returns the first match in s, or nil. A global Regex searches from
// its cursor, moves the cursor past the match, and resets it to zero once
// no further match exists.
func (r *Regex) Exec(s string) *Result {
	start := 0
	if r.flags.Global {
		start = r.lastIndex
		if start < 0 || start > len(s) {
			r.lastIndex = 0
			return nil
		}
	}

	loc := r.eng.find(s, start)
	if loc == nil {
		if r.flags.Global {
			r.lastIndex = 0
		}
		return nil
	}

	if r.flags.Global {
		r.lastIndex = loc[1]
	}
	return newResult(s, loc)
}

// Match returns the full match followed by its capture groups for a
// non-global Regex, or the text of every match for a global one. It
// returns nil when nothing matches.
func (r *Regex) Match(s string) []string {
	if !r.flags.Global {
		res := r.Exec(s)
		if res == nil {
			return nil
		}
		return res.Strings()
	}

	r.lastIndex = 0
	locs := r.eng.findAll(s)
	if len(locs) == 0 {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// MatchAll returns every match in s with its groups, regardless of the
// global flag. It does not touch the cursor.
func (r *Regex) MatchAll(s string) []*Result {
	locs := r.eng.findAll(s)
	results := make([]*Result, len(locs))
	for i, loc := range locs {
		results[i] = newResult(s, loc)
	}
	return results
}

// Search returns the byte offset of the first match, or -1. It ignores
// the global flag and the cursor.
func (r *Regex) Search(s string) int {
	loc := r.eng.find(s, 0)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// Replace substitutes repl for the first match, or for every match when
// the Regex is global. repl may reference $&, $`, $', $1-$99, $<name>,
// and $$ for a literal dollar sign.
func (r *Regex) Replace(s, repl string) string {
	return r.replace(s, func(loc []int) string {
		return r.expand(repl, s, loc)
	})
}

// ReplaceFunc is like Replace but computes each substitution from the match.
func (r *Regex) ReplaceFunc(s string, fn func(*Result) string) string {
	return r.replace(s, func(loc []int) string {
		return fn(newResult(s, loc))
	})
}

func (r *Regex) replace(s string, sub func(loc []int) string) string {
	var locs [][]int
	if r.flags.Global {
		r.lastIndex = 0
		locs = r.eng.findAll(s)
	} else if loc := r.eng.find(s, 0); loc != nil {
		locs = [][]int{loc}
	}
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		b.WriteString(sub(loc))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Split breaks s around matches. Text captured by groups is spliced in
// between the pieces, and an empty match at the current split position
// does not split.
func (r *Regex) Split(s string) []string {
	if s == "" {
		if r.eng.find(s, 0) != nil {
			return []string{}
		}
		return []string{""}
	}

	var out []string
	p := 0
	for _, loc := range r.eng.findAll(s) {
		if loc[1] == p || loc[0] >= len(s) {
			continue
		}
		out = append(out, s[p:loc[0]])
		for g := 1; 2*g+1 < len(loc); g++ {
			if loc[2*g] < 0 {
				out = append(out, "")
				continue
			}
			out = append(out, s[loc[2*g]:loc[2*g+1]])
		}
		p = loc[1]
	}
	return append(out, s[p:])
}
