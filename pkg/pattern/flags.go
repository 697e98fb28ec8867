// Package pattern implements flag-driven regular expressions with test,
// exec, match, search, replace and split operations on top of a
// pluggable matching engine.
package pattern

import (
	"fmt"
	"strings"
)

// Flags holds the modifiers a pattern was defined with.
type Flags struct {
	Global     bool // g
	IgnoreCase bool // i
	Multiline  bool // m
	DotAll     bool // s
}

// ParseFlags parses a flag string such as "gi". Unknown and repeated
// letters are rejected.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	seen := make(map[rune]bool, len(s))
	for _, c := range s {
		if seen[c] {
			return Flags{}, fmt.Errorf("duplicate flag %q", c)
		}
		seen[c] = true

		switch c {
		case 'g':
			f.Global = true
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			f.DotAll = true
		default:
			return Flags{}, fmt.Errorf("unknown flag %q", c)
		}
	}
	return f, nil
}

// String returns the flags in canonical order.
func (f Flags) String() string {
	var b strings.Builder
	if f.Global {
		b.WriteByte('g')
	}
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}
	if f.DotAll {
		b.WriteByte('s')
	}
	return b.String()
}
