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

// Names turns "last, first" entries into "first last".
type Names struct {
	names  []string
	re     *pattern.Regex
	logger *zap.Logger
}

// NewNames creates the name reorder exercise.
func NewNames(cfg config.NamesConfig, logger *zap.Logger) *Names {
	return &Names{
		names:  cfg.Names,
		re:     cfg.Pattern.CompiledRegex(),
		logger: logger,
	}
}

func (n *Names) Name() string { return "names" }

func (n *Names) Page() string { return "names" }

func (n *Names) Description() string {
	return "reorder \"last, first\" names as \"first last\""
}

// Reorder swaps the first two capture groups of each name. Entries that
// do not match are dropped.
func Reorder(names []string, re *pattern.Regex) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		re.SetLastIndex(0)
		res := re.Exec(name)
		if res == nil {
			continue
		}
		last, first := res.Group(1), res.Group(2)
		out = append(out, first+" "+last)
	}
	return out
}

// ReorderReplace does the same as Reorder with a single substitution per
// name, replacing only the matched part.
func ReorderReplace(names []string, re *pattern.Regex) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if re.Search(name) < 0 {
			continue
		}
		out = append(out, re.Replace(name, "$2 $1"))
	}
	return out
}

func (n *Names) Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	firstLast := Reorder(n.names, n.re)
	if skipped := len(n.names) - len(firstLast); skipped > 0 {
		n.logger.Debug("Skipped names without a match", zap.Int("skipped", skipped))
	}

	if err := page.SetInnerHTML("#last", ListItems(n.names)); err != nil {
		return fmt.Errorf("failed to write original names: %w", err)
	}
	if err := page.SetInnerHTML("#first", ListItems(firstLast)); err != nil {
		return fmt.Errorf("failed to write reordered names: %w", err)
	}
	return nil
}
