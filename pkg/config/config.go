package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/regexlab/pkg/content"
	"github.com/Veraticus/regexlab/pkg/pattern"
)

// Output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config holds all configuration for regexlab
type Config struct {
	Engine pattern.EngineKind `yaml:"engine" env:"REGEXLAB_ENGINE"`
	Format string             `yaml:"format" env:"REGEXLAB_FORMAT"`
	OutDir string             `yaml:"out_dir" env:"REGEXLAB_OUT"`
	Debug  bool               `yaml:"debug" env:"REGEXLAB_DEBUG"`

	GettingStarted GettingStartedConfig `yaml:"getting_started"`
	AreaCode       AreaCodeConfig       `yaml:"area_code"`
	Phone          PhoneConfig          `yaml:"phone"`
	Weekday        WeekdayConfig        `yaml:"weekday"`
	Names          NamesConfig          `yaml:"names"`
}

// Pattern represents a configurable pattern.
type Pattern struct {
	Name        string         `yaml:"name"`
	Regex       string         `yaml:"regex"`
	Flags       string         `yaml:"flags"`
	Description string         `yaml:"description"`
	compiled    *pattern.Regex `yaml:"-"`
}

// CompiledRegex returns the compiled regular expression
func (p *Pattern) CompiledRegex() *pattern.Regex {
	return p.compiled
}

// SetCompiledRegex sets the compiled regular expression
func (p *Pattern) SetCompiledRegex(re *pattern.Regex) {
	p.compiled = re
}

// Named pairs the compiled regex with the pattern's name.
func (p *Pattern) Named() pattern.Named {
	return pattern.Named{Name: p.Name, Regex: p.compiled}
}

// GettingStartedConfig configures the pattern-matching demo.
type GettingStartedConfig struct {
	Text        string  `yaml:"text"`
	Primary     Pattern `yaml:"primary"`
	Secondary   Pattern `yaml:"secondary"`
	Flagged     Pattern `yaml:"flagged"`
	Separator   Pattern `yaml:"separator"`
	Replacement string  `yaml:"replacement"`
}

// AreaCodeConfig configures the area-code filter.
type AreaCodeConfig struct {
	Numbers []string `yaml:"numbers"`
	Pattern Pattern  `yaml:"pattern"`
}

// PhoneConfig configures the live phone validator.
type PhoneConfig struct {
	Pattern      Pattern  `yaml:"pattern"`
	ValidClass   string   `yaml:"valid_class"`
	InvalidClass string   `yaml:"invalid_class"`
	Samples      []string `yaml:"samples"`
}

// WeekdayConfig configures the weekday replacement.
type WeekdayConfig struct {
	Text        string  `yaml:"text"`
	Pattern     Pattern `yaml:"pattern"`
	Replacement string  `yaml:"replacement"`
}

// NamesConfig configures the name reorder.
type NamesConfig struct {
	Names   []string `yaml:"names"`
	Pattern Pattern  `yaml:"pattern"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine: pattern.EngineECMA,
		Format: FormatText,
		GettingStarted: GettingStartedConfig{
			Text:        "Programming courses alwayS starts with a hello world example.",
			Primary:     Pattern{Name: "hello", Regex: `hello`},
			Secondary:   Pattern{Name: "world", Regex: `world`},
			Flagged:     Pattern{Name: "trailing-s", Regex: `s\s`, Flags: "gi", Description: "an s followed by whitespace"},
			Separator:   Pattern{Name: "whitespace", Regex: `\s`},
			Replacement: "hi",
		},
		AreaCode: AreaCodeConfig{
			Numbers: []string{
				"801-766-9754",
				"801-545-5454",
				"435-666-1212",
				"801-796-8010",
				"435-555-9801",
				"801-009-0909",
				"435-222-8013",
				"801-777-6655",
			},
			Pattern: Pattern{Name: "area-801", Regex: `801-...-....`},
		},
		Phone: PhoneConfig{
			Pattern: Pattern{
				Name:        "phone",
				Regex:       `\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`,
				Description: "(nnn)-nnn-nnnn, nnn.nnn.nnnn, nnn-nnn-nnnn, nnnnnnnnnn or (nnn)nnn-nnnn",
			},
			ValidClass:   "green",
			InvalidClass: "red",
			Samples:      []string{"801-766-9754", "(801)766-9754", "801.766.9754", "8017669754", "80176"},
		},
		Weekday: WeekdayConfig{
			Text:        content.Text,
			Pattern:     Pattern{Name: "weekday", Regex: `\b[mtwfs][a-z]{1,4}[nsir]day\b`, Flags: "gi"},
			Replacement: "Monday",
		},
		Names: NamesConfig{
			Names: []string{
				"Jensen, Dale",
				"Smith, Andrea",
				"Jorgensen, Michael",
				"Vasefi, Annika",
				"Lopez, Monica",
				"Crockett, Steven",
			},
			Pattern: Pattern{Name: "last-first", Regex: `(\w+), (\w+)`},
		},
	}
}

// Load loads configuration from path (or the default location when path
// is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate before compiling so the engine name is known to be good
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Compile(); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("REGEXLAB_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "regexlab", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "regexlab", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if engine := os.Getenv("REGEXLAB_ENGINE"); engine != "" {
		cfg.Engine = pattern.EngineKind(engine)
	}

	if format := os.Getenv("REGEXLAB_FORMAT"); format != "" {
		cfg.Format = format
	}

	if out := os.Getenv("REGEXLAB_OUT"); out != "" {
		cfg.OutDir = out
	}

	if debug := os.Getenv("REGEXLAB_DEBUG"); debug != "" {
		switch debug {
		case "true", "1", "yes":
			cfg.Debug = true
		case "false", "0", "no":
			cfg.Debug = false
		default:
			return fmt.Errorf("invalid REGEXLAB_DEBUG value: %q (use true/false)", debug)
		}
	}

	return nil
}

// Patterns returns pointers to every configured pattern.
func (c *Config) Patterns() []*Pattern {
	return []*Pattern{
		&c.GettingStarted.Primary,
		&c.GettingStarted.Secondary,
		&c.GettingStarted.Flagged,
		&c.GettingStarted.Separator,
		&c.AreaCode.Pattern,
		&c.Phone.Pattern,
		&c.Weekday.Pattern,
		&c.Names.Pattern,
	}
}

// Compile compiles all regex patterns with the configured engine
func (c *Config) Compile() error {
	for _, p := range c.Patterns() {
		re, err := pattern.Compile(p.Regex, p.Flags, c.Engine)
		if err != nil {
			return fmt.Errorf("failed to compile pattern %q: %w", p.Name, err)
		}
		p.SetCompiledRegex(re)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	kind, err := pattern.ParseEngineKind(string(c.Engine))
	if err != nil {
		return err
	}
	c.Engine = kind

	switch c.Format {
	case FormatText, FormatHTML:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatHTML, c.Format)
	}

	if c.Phone.ValidClass == "" || c.Phone.InvalidClass == "" {
		return fmt.Errorf("phone.valid_class and phone.invalid_class are required")
	}

	if c.Phone.ValidClass == c.Phone.InvalidClass {
		return fmt.Errorf("phone.valid_class and phone.invalid_class must differ")
	}

	return nil
}
