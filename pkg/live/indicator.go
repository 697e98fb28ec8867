package live

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Indicator redraws the input line in the color of its current class.
type Indicator struct {
	mu      sync.Mutex
	writer  io.Writer
	prompt  string
	colored bool
	colors  map[string]*color.Color
}

// NewIndicator creates an indicator writing to writer. When colored is
// false the class is still shown as a label after the value.
func NewIndicator(writer io.Writer, prompt string, colored bool) *Indicator {
	colors := map[string]*color.Color{
		"green": color.New(color.FgGreen),
		"red":   color.New(color.FgRed),
	}
	for _, c := range colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Indicator{
		writer:  writer,
		prompt:  prompt,
		colored: colored,
		colors:  colors,
	}
}

// Draw replaces the current terminal line with the prompt and value.
func (i *Indicator) Draw(value, class string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.writer == nil {
		return nil
	}

	// \r - return to column 1
	// \033[2K - clear entire line
	line := fmt.Sprintf("\r\033[2K%s%s %s", i.prompt, i.paint(class, value), i.paint(class, "["+class+"]"))
	if _, err := fmt.Fprint(i.writer, line); err != nil {
		return err
	}
	return nil
}

// Finish moves past the input line.
func (i *Indicator) Finish() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.writer == nil {
		return nil
	}
	_, err := fmt.Fprint(i.writer, "\r\n")
	return err
}

func (i *Indicator) paint(class, s string) string {
	c, ok := i.colors[class]
	if !ok {
		return s
	}
	return c.Sprint(s)
}
