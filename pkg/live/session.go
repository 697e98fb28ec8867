// Package live runs an input field in the terminal, re-validating the
// value after every keystroke.
package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Veraticus/regexlab/pkg/interfaces"
)

// ErrInterrupted is returned when the user presses Ctrl-C.
var ErrInterrupted = errors.New("input interrupted")

// Target is the field a session edits.
type Target interface {
	interfaces.InputHandler
	ClassFor(value string) string
}

// Session reads keystrokes and keeps the target and the terminal line in
// step with the typed value.
type Session struct {
	target    Target
	indicator *Indicator
	logger    *zap.Logger
	editor    editor
}

// NewSession creates a session that draws through indicator.
func NewSession(target Target, indicator *Indicator, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		target:    target,
		indicator: indicator,
		logger:    logger,
	}
}

// Run reads from in until Enter, Ctrl-D, end of input or cancellation,
// and returns the final value. When in is a terminal it is switched to
// raw mode for the duration of the session.
func (s *Session) Run(ctx context.Context, in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return "", fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, state) // Best effort
		}()
		s.logger.Debug("Terminal switched to raw mode", zap.Int("fd", fd))
	}

	if err := s.update(); err != nil {
		return "", err
	}

	chunks := make(chan []byte)
	errChan := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	// The reader stays blocked in Read until in is closed or delivers more
	// data; it drops anything that arrives after the session has ended.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				data := append([]byte(nil), buf[:n]...)
				select {
				case chunks <- data:
				case <-done:
					return
				}
			}
			if err != nil {
				errChan <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return s.finish(ctx.Err())
		case err := <-errChan:
			if errors.Is(err, io.EOF) {
				return s.finish(nil)
			}
			return s.finish(fmt.Errorf("failed to read input: %w", err))
		case data := <-chunks:
			for _, b := range data {
				switch s.editor.feed(b) {
				case outcomeKey:
					if err := s.update(); err != nil {
						return s.finish(err)
					}
				case outcomeSubmit, outcomeEOF:
					return s.finish(nil)
				case outcomeInterrupt:
					return s.finish(ErrInterrupted)
				}
			}
		}
	}
}

// update re-validates the current value and redraws it.
func (s *Session) update() error {
	value := s.editor.Value()
	if err := s.target.HandleInput(value); err != nil {
		return fmt.Errorf("failed to handle input: %w", err)
	}
	if s.indicator != nil {
		if err := s.indicator.Draw(value, s.target.ClassFor(value)); err != nil {
			return fmt.Errorf("failed to draw input: %w", err)
		}
	}
	return nil
}

func (s *Session) finish(err error) (string, error) {
	if s.indicator != nil {
		_ = s.indicator.Finish() // Best effort
	}
	return s.editor.Value(), err
}
