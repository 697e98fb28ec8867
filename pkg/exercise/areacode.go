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

// AreaCode keeps the phone numbers that carry one area code.
type AreaCode struct {
	numbers []string
	re      *pattern.Regex
	logger  *zap.Logger
}

// NewAreaCode creates the area-code filter.
func NewAreaCode(cfg config.AreaCodeConfig, logger *zap.Logger) *AreaCode {
	return &AreaCode{
		numbers: cfg.Numbers,
		re:      cfg.Pattern.CompiledRegex(),
		logger:  logger,
	}
}

func (a *AreaCode) Name() string { return "area-code" }

func (a *AreaCode) Page() string { return "area-code" }

func (a *AreaCode) Description() string {
	return "filter phone numbers down to the 801 area code"
}

// Filter returns the numbers containing a match, in their original order.
func Filter(numbers []string, re *pattern.Regex) []string {
	filtered := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if re.Search(n) >= 0 {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func (a *AreaCode) Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filtered := Filter(a.numbers, a.re)
	a.logger.Debug("Filtered phone numbers",
		zap.Stringer("pattern", a.re),
		zap.Int("total", len(a.numbers)),
		zap.Int("kept", len(filtered)))

	if err := page.SetInnerHTML("#all-numbers", ListItems(a.numbers)); err != nil {
		return fmt.Errorf("failed to write all numbers: %w", err)
	}
	if err := page.SetInnerHTML("#filtered-numbers", ListItems(filtered)); err != nil {
		return fmt.Errorf("failed to write filtered numbers: %w", err)
	}
	return nil
}
