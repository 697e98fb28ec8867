// Package interfaces defines the core interfaces used throughout the application.
package interfaces

// PageWriter writes computed text into named page elements.
type PageWriter interface {
	SetInnerHTML(selector, markup string) error
	SetInnerText(selector, text string) error
	SetClassName(selector, class string) error
}

// Validator decides whether an input value is acceptable.
type Validator interface {
	Validate(value string) bool
}

// InputHandler reacts to the current value of an input after each keystroke.
type InputHandler interface {
	HandleInput(value string) error
}
