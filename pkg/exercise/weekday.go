package exercise

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/interfaces"
	"github.com/Veraticus/regexlab/pkg/pattern"
)

// Weekday replaces every day of the week in a statement.
type Weekday struct {
	text        string
	replacement string
	re          *pattern.Regex
	logger      *zap.Logger
}

// NewWeekday creates the weekday replacement exercise.
func NewWeekday(cfg config.WeekdayConfig, logger *zap.Logger) *Weekday {
	return &Weekday{
		text:        cfg.Text,
		replacement: cfg.Replacement,
		re:          cfg.Pattern.CompiledRegex(),
		logger:      logger,
	}
}

func (w *Weekday) Name() string { return "weekday" }

func (w *Weekday) Page() string { return "weekday" }

func (w *Weekday) Description() string {
	return "replace any day of the week with Monday"
}

// Replaced returns the statement after substitution.
func (w *Weekday) Replaced() string {
	return w.re.Replace(w.text, w.replacement)
}

func (w *Weekday) Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	replaced := w.Replaced()
	w.logger.Debug("Replaced weekdays",
		zap.Int("matches", len(w.re.MatchAll(w.text))),
		zap.String("replacement", w.replacement))

	if err := page.SetInnerText("#original", w.text); err != nil {
		return fmt.Errorf("failed to write original text: %w", err)
	}
	if err := page.SetInnerText("#monday", replaced); err != nil {
		return fmt.Errorf("failed to write replaced text: %w", err)
	}

	if console != nil {
		fmt.Fprintln(console, replaced)
	}
	return nil
}
