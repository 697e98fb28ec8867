// Package exercise contains the pattern-matching exercises. Each one
// applies a fixed pattern to a fixed subject and writes the outcome into
// its page and, where it has one, the console.
package exercise

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/interfaces"
)

// Exercise is one self-contained pattern-matching program.
type Exercise interface {
	// Name is the identifier used on the command line.
	Name() string
	// Page names the embedded page the exercise writes into.
	Page() string
	Description() string
	Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error
}

// All builds every exercise from cfg, in the order they are listed.
func All(cfg *config.Config, logger *zap.Logger) []Exercise {
	if logger == nil {
		logger = zap.NewNop()
	}
	return []Exercise{
		NewGettingStarted(cfg.GettingStarted, logger),
		NewAreaCode(cfg.AreaCode, logger),
		NewPhoneValidator(cfg.Phone, logger),
		NewWeekday(cfg.Weekday, logger),
		NewNames(cfg.Names, logger),
	}
}

// Find returns the exercise called name.
func Find(exercises []Exercise, name string) (Exercise, error) {
	for _, ex := range exercises {
		if ex.Name() == name {
			return ex, nil
		}
	}

	names := make([]string, len(exercises))
	for i, ex := range exercises {
		names[i] = ex.Name()
	}
	return nil, fmt.Errorf("unknown exercise %q (available: %s)", name, strings.Join(names, ", "))
}

// ListItems renders items as escaped <li> elements.
func ListItems(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(item))
		b.WriteString("</li>")
	}
	return b.String()
}
