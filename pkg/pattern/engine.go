package pattern

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// EngineKind selects the matching engine a pattern is compiled with.
type EngineKind string

const (
	// EngineECMA uses regexp2 in ECMAScript mode, matching browser semantics.
	EngineECMA EngineKind = "ecma"
	// EngineRE2 uses the standard library's RE2 implementation.
	EngineRE2 EngineKind = "re2"
)

// ParseEngineKind validates an engine name. An empty name selects the default.
func ParseEngineKind(s string) (EngineKind, error) {
	switch EngineKind(s) {
	case "":
		return EngineECMA, nil
	case EngineECMA, EngineRE2:
		return EngineKind(s), nil
	default:
		return "", fmt.Errorf("unknown engine %q (use ecma or re2)", s)
	}
}

// engine locates matches. Locations are byte offsets into the subject,
// laid out like regexp.FindStringSubmatchIndex: pairs of start/end per
// group, -1 for groups that did not participate.
type engine interface {
	// find returns the first match starting at or after start, or nil.
	find(s string, start int) []int
	// findAll returns every successive non-overlapping match.
	findAll(s string) [][]int
	numSubexp() int
	// groupIndex returns the number of a named group, or -1.
	groupIndex(name string) int
}

func newEngine(kind EngineKind, source string, flags Flags) (engine, error) {
	switch kind {
	case EngineECMA, "":
		return newECMAEngine(source, flags)
	case EngineRE2:
		return newRE2Engine(source, flags)
	default:
		return nil, fmt.Errorf("unknown engine %q", kind)
	}
}

type re2Engine struct {
	re *regexp.Regexp
}

func newRE2Engine(source string, flags Flags) (*re2Engine, error) {
	prefix := ""
	if flags.IgnoreCase {
		prefix += "i"
	}
	if flags.Multiline {
		prefix += "m"
	}
	if flags.DotAll {
		prefix += "s"
	}
	expr := source
	if prefix != "" {
		expr = "(?" + prefix + ")" + source
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &re2Engine{re: re}, nil
}

func (e *re2Engine) find(s string, start int) []int {
	if start == 0 {
		return e.re.FindStringSubmatchIndex(s)
	}
	// RE2 cannot resume at an offset without losing the context that
	// \b and ^ depend on, so scan the full match sequence instead. A start
	// inside one of those matches skips to the next one, where ecma would
	// find a match beginning at start.
	for _, loc := range e.re.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] >= start {
			return loc
		}
	}
	return nil
}

func (e *re2Engine) findAll(s string) [][]int {
	return e.re.FindAllStringSubmatchIndex(s, -1)
}

func (e *re2Engine) numSubexp() int {
	return e.re.NumSubexp()
}

func (e *re2Engine) groupIndex(name string) int {
	return e.re.SubexpIndex(name)
}

type ecmaEngine struct {
	re *regexp2.Regexp
	// numbers lists group numbers in location order.
	numbers []int
}

func newECMAEngine(source string, flags Flags) (*ecmaEngine, error) {
	// regexp2 only accepts IgnoreCase and Multiline alongside ECMAScript.
	if flags.DotAll {
		return nil, fmt.Errorf("flag %q is not supported by the %s engine", 's', EngineECMA)
	}

	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if flags.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if flags.Multiline {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, err
	}
	return &ecmaEngine{re: re, numbers: re.GetGroupNumbers()}, nil
}

// regexp2 only returns errors for match timeouts, and none is configured,
// so an error is treated as no match.

func (e *ecmaEngine) find(s string, start int) []int {
	m, err := e.re.FindStringMatchStartingAt(s, start)
	if err != nil || m == nil {
		return nil
	}
	return e.locate(m, runeOffsets(s))
}

func (e *ecmaEngine) findAll(s string) [][]int {
	var locs [][]int
	offsets := runeOffsets(s)

	m, err := e.re.FindStringMatch(s)
	for err == nil && m != nil {
		locs = append(locs, e.locate(m, offsets))
		m, err = e.re.FindNextMatch(m)
	}
	return locs
}

func (e *ecmaEngine) numSubexp() int {
	return len(e.numbers) - 1
}

func (e *ecmaEngine) groupIndex(name string) int {
	n := e.re.GroupNumberFromName(name)
	if n < 0 {
		return -1
	}
	for i, num := range e.numbers {
		if num == n {
			return i
		}
	}
	return -1
}

// locate converts regexp2's rune-based group positions into byte offsets.
func (e *ecmaEngine) locate(m *regexp2.Match, offsets []int) []int {
	loc := make([]int, 2*len(e.numbers))
	for i, n := range e.numbers {
		g := m.GroupByNumber(n)
		if g == nil || len(g.Captures) == 0 {
			loc[2*i], loc[2*i+1] = -1, -1
			continue
		}
		loc[2*i] = offsets[g.Index]
		loc[2*i+1] = offsets[g.Index+g.Length]
	}
	return loc
}

// runeOffsets maps rune indexes to byte offsets, with a trailing entry
// for the end of the string.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
