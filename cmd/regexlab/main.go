package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/live"
	"github.com/Veraticus/regexlab/pkg/pattern"
)

// options holds the command line flags
type options struct {
	configPath string
	engine     string
	format     string
	outDir     string
	debug      bool
	help       bool
	args       []string
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}

	fs := flag.NewFlagSet("regexlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.engine, "engine", "", "Matching engine: ecma or re2")
	fs.StringVar(&opts.format, "format", "", "Output format: text or html")
	fs.StringVar(&opts.outDir, "out", "", "Directory to write html pages to (default: stdout)")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	opts.args = fs.Args()
	return opts, fs, nil
}

// applyFlags overrides config with command line flags
func applyFlags(cfg *config.Config, opts *options) error {
	recompile := opts.engine != "" && pattern.EngineKind(opts.engine) != cfg.Engine
	if opts.engine != "" {
		cfg.Engine = pattern.EngineKind(opts.engine)
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.outDir != "" {
		cfg.OutDir = opts.outDir
	}
	if opts.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if recompile {
		return cfg.Compile()
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, fs)
		return 2
	}
	if opts.help {
		printUsage(stdout, fs)
		return 0
	}

	// Load configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Create dependencies
	deps, err := NewDependencies(cfg, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		return 1
	}
	defer deps.Close()

	app := NewApplication(deps)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := ""
	if len(opts.args) > 0 {
		command = opts.args[0]
	}

	switch command {
	case "list":
		app.List()
		return 0
	case "validate":
		if err := app.Validate(ctx); err != nil {
			if errors.Is(err, live.ErrInterrupted) || errors.Is(err, context.Canceled) {
				// Exit with standard interrupt code
				return 130
			}
			fmt.Fprintf(stderr, "Error validating input: %v\n", err)
			return 1
		}
		return 0
	default:
		if err := app.Run(ctx, opts.args); err != nil {
			fmt.Fprintf(stderr, "Error running exercises: %v\n", err)
			return 1
		}
		return 0
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "regexlab - pattern matching exercises")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  regexlab [OPTIONS] [EXERCISE...]   Run exercises (all when none given)")
	fmt.Fprintln(w, "  regexlab [OPTIONS] list            List exercises")
	fmt.Fprintln(w, "  regexlab [OPTIONS] validate        Validate a phone number as you type")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  REGEXLAB_CONFIG   Path to config file")
	fmt.Fprintln(w, "  REGEXLAB_ENGINE   Matching engine (default: ecma)")
	fmt.Fprintln(w, "  REGEXLAB_FORMAT   Output format (default: text)")
	fmt.Fprintln(w, "  REGEXLAB_OUT      Directory for html pages")
	fmt.Fprintln(w, "  REGEXLAB_DEBUG    Enable debug logging (true/false)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/regexlab/config.yaml")
}
