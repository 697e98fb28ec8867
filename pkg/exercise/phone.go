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

const phoneSelector = "#phone"

// PhoneValidator checks typed phone numbers and flips the field between
// the valid and invalid classes.
type PhoneValidator struct {
	re           *pattern.Regex
	validClass   string
	invalidClass string
	samples      []string
	logger       *zap.Logger

	page interfaces.PageWriter
}

var (
	_ interfaces.Validator    = (*PhoneValidator)(nil)
	_ interfaces.InputHandler = (*PhoneValidator)(nil)
)

// NewPhoneValidator creates the live phone validator.
func NewPhoneValidator(cfg config.PhoneConfig, logger *zap.Logger) *PhoneValidator {
	return &PhoneValidator{
		re:           cfg.Pattern.CompiledRegex(),
		validClass:   cfg.ValidClass,
		invalidClass: cfg.InvalidClass,
		samples:      cfg.Samples,
		logger:       logger,
	}
}

func (p *PhoneValidator) Name() string { return "phone" }

func (p *PhoneValidator) Page() string { return "phone" }

func (p *PhoneValidator) Description() string {
	return "validate phone numbers as they are typed"
}

// Validate reports whether value contains a phone number.
func (p *PhoneValidator) Validate(value string) bool {
	return p.re.Search(value) >= 0
}

// ClassFor returns the class the field should carry for value.
func (p *PhoneValidator) ClassFor(value string) string {
	if p.Validate(value) {
		return p.validClass
	}
	return p.invalidClass
}

// Attach binds the validator to the page whose field it updates.
func (p *PhoneValidator) Attach(page interfaces.PageWriter) {
	p.page = page
}

// HandleInput re-validates the current field value.
func (p *PhoneValidator) HandleInput(value string) error {
	class := p.ClassFor(value)
	p.logger.Debug("Validated input", zap.String("value", value), zap.String("class", class))

	if p.page == nil {
		return nil
	}
	return p.page.SetClassName(phoneSelector, class)
}

// Run validates the configured samples, leaving the field in the state
// an empty input produces.
func (p *PhoneValidator) Run(ctx context.Context, page interfaces.PageWriter, console io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.Attach(page)
	if console != nil {
		for _, sample := range p.samples {
			fmt.Fprintf(console, "%-16s %s\n", sample, p.ClassFor(sample))
		}
	}

	if err := p.HandleInput(""); err != nil {
		return fmt.Errorf("failed to reset phone field: %w", err)
	}
	return nil
}
