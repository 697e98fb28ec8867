package pattern

// Named pairs a compiled Regex with the name it is reported under.
type Named struct {
	Name  string
	Regex *Regex
}

// MatchResult represents a pattern match result.
type MatchResult struct {
	PatternName string
	Text        string
	Position    int
}

// Matcher runs a fixed set of named patterns over the same text.
type Matcher struct {
	patterns []Named
}

// NewMatcher creates a matcher, skipping entries without a compiled regex.
func NewMatcher(patterns []Named) *Matcher {
	active := make([]Named, 0, len(patterns))
	for _, p := range patterns {
		if p.Regex != nil {
			active = append(active, p)
		}
	}

	return &Matcher{
		patterns: active,
	}
}

// Match finds all matches of every pattern, grouped by pattern in the
// order the patterns were given.
func (m *Matcher) Match(text string) []MatchResult {
	var results []MatchResult

	for _, p := range m.patterns {
		for _, res := range p.Regex.MatchAll(text) {
			results = append(results, MatchResult{
				PatternName: p.Name,
				Text:        res.String(),
				Position:    res.Index,
			})
		}
	}

	return results
}

// Patterns returns the active patterns.
func (m *Matcher) Patterns() []Named {
	return m.patterns
}
