package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/exercise"
	"github.com/Veraticus/regexlab/pkg/live"
	"github.com/Veraticus/regexlab/pkg/page"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Exercises []exercise.Exercise
	Stdin     io.Reader
	Stdout    io.Writer
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, stdin io.Reader, stdout io.Writer) (*Dependencies, error) {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Exercises: exercise.All(cfg, logger),
		Stdin:     stdin,
		Stdout:    stdout,
	}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync() // Best effort
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// List prints every exercise with its description
func (a *Application) List() {
	for _, ex := range a.deps.Exercises {
		fmt.Fprintf(a.deps.Stdout, "%-16s %s\n", ex.Name(), ex.Description())
	}
}

// Run runs the named exercises, or all of them when names is empty
func (a *Application) Run(ctx context.Context, names []string) error {
	selected := a.deps.Exercises
	if len(names) > 0 {
		selected = make([]exercise.Exercise, 0, len(names))
		for _, name := range names {
			ex, err := exercise.Find(a.deps.Exercises, name)
			if err != nil {
				return err
			}
			selected = append(selected, ex)
		}
	}

	for _, ex := range selected {
		if err := a.runOne(ctx, ex); err != nil {
			return fmt.Errorf("%s: %w", ex.Name(), err)
		}
	}
	return nil
}

func (a *Application) runOne(ctx context.Context, ex exercise.Exercise) error {
	doc, err := page.Load(ex.Page())
	if err != nil {
		return err
	}

	a.deps.Logger.Debug("Running exercise", zap.String("name", ex.Name()))

	if a.deps.Config.Format == config.FormatHTML {
		if err := ex.Run(ctx, doc, nil); err != nil {
			return err
		}
		return a.writeHTML(ex.Page(), doc)
	}

	fmt.Fprintf(a.deps.Stdout, "== %s: %s ==\n", ex.Name(), ex.Description())
	tracked := newTrackingPage(doc)
	if err := ex.Run(ctx, tracked, a.deps.Stdout); err != nil {
		return err
	}
	if err := tracked.Summarize(a.deps.Stdout); err != nil {
		return err
	}
	fmt.Fprintln(a.deps.Stdout)
	return nil
}

// writeHTML writes the page to the output directory, or stdout when none is set
func (a *Application) writeHTML(name string, doc *page.Document) error {
	if a.deps.Config.OutDir == "" {
		return doc.Render(a.deps.Stdout)
	}

	if err := os.MkdirAll(a.deps.Config.OutDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(a.deps.Config.OutDir, name+".html")
	f, err := os.Create(path) // #nosec G304 -- path is built from the configured output directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := doc.Render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.deps.Logger.Debug("Wrote page", zap.String("path", path))
	return f.Close()
}

// Validate runs the phone field interactively on stdin
func (a *Application) Validate(ctx context.Context) error {
	ex, err := exercise.Find(a.deps.Exercises, "phone")
	if err != nil {
		return err
	}
	validator, ok := ex.(*exercise.PhoneValidator)
	if !ok {
		return fmt.Errorf("phone exercise is not a validator")
	}

	doc, err := page.Load(validator.Page())
	if err != nil {
		return err
	}
	validator.Attach(doc)

	colored := false
	if f, ok := a.deps.Stdout.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}

	indicator := live.NewIndicator(a.deps.Stdout, "phone> ", colored)
	session := live.NewSession(validator, indicator, a.deps.Logger)
	value, err := session.Run(ctx, a.deps.Stdin)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.deps.Stdout, "%s is %s\n", value, validator.ClassFor(value))
	if a.deps.Config.Format == config.FormatHTML {
		return a.writeHTML(validator.Page(), doc)
	}
	return nil
}
