package exercise

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/interfaces"
	"github.com/Veraticus/regexlab/pkg/pattern"
)

// GettingStarted walks through every matching operation on one sentence.
type GettingStarted struct {
	text        string
	replacement string
	primary     *pattern.Regex
	secondary   *pattern.Regex
	flagged     *pattern.Regex
	separator   *pattern.Regex
	matcher     *pattern.Matcher
	logger      *zap.Logger
}

// NewGettingStarted creates the pattern-matching demo.
func NewGettingStarted(cfg config.GettingStartedConfig, logger *zap.Logger) *GettingStarted {
	return &GettingStarted{
		text:        cfg.Text,
		replacement: cfg.Replacement,
		primary:     cfg.Primary.CompiledRegex(),
		secondary:   cfg.Secondary.CompiledRegex(),
		flagged:     cfg.Flagged.CompiledRegex(),
		separator:   cfg.Separator.CompiledRegex(),
		matcher: pattern.NewMatcher([]pattern.Named{
			cfg.Primary.Named(),
			cfg.Secondary.Named(),
			cfg.Flagged.Named(),
		}),
		logger: logger,
	}
}

func (g *GettingStarted) Name() string { return "getting-started" }

func (g *GettingStarted) Page() string { return "getting-started" }

func (g *GettingStarted) Description() string {
	return "test, exec, match, search, replace and split on one sentence"
}

// Lines returns the demo output, one operation per line.
func (g *GettingStarted) Lines() []string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("test %s: %t", g.primary, g.primary.Test(g.text))
	add("test %s: %t", g.secondary, g.secondary.Test(g.text))
	add("exec %s: %s", g.primary, describe(g.primary.Exec(g.text)))
	add("match %s: %q", g.primary, g.primary.Match(g.text))
	add("search %s: %d", g.primary, g.primary.Search(g.text))
	add("replace %s with %q: %s", g.primary, g.replacement, g.primary.Replace(g.text, g.replacement))
	add("split %s: %q", g.primary, g.primary.Split(g.text))
	add("split %s: %q", g.separator, g.separator.Split(g.text))

	// A global pattern remembers where the last exec stopped.
	add("match %s: %q", g.flagged, g.flagged.Match(g.text))
	g.flagged.SetLastIndex(0)
	add("exec %s: %s", g.flagged, describe(g.flagged.Exec(g.text)))
	add("exec %s: %s", g.flagged, describe(g.flagged.Exec(g.text)))
	g.flagged.SetLastIndex(0)

	for _, m := range g.matcher.Match(g.text) {
		add("found %s %q at %d", m.PatternName, m.Text, m.Position)
	}
	return lines
}

func describe(res *pattern.Result) string {
	if res == nil {
		return "null"
	}
	return fmt.Sprintf("%q index=%d", res.Strings(), res.Index)
}

func (g *GettingStarted) Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := g.Lines()
	g.logger.Debug("Ran matching demo", zap.Int("operations", len(lines)))

	if console != nil {
		for _, line := range lines {
			fmt.Fprintln(console, line)
		}
	}

	if err := page.SetInnerText("#subject", g.text); err != nil {
		return fmt.Errorf("failed to write subject: %w", err)
	}
	if err := page.SetInnerText("#console", strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write console: %w", err)
	}
	return nil
}
