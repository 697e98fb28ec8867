// Package testutil provides test doubles shared across packages.
package testutil

import (
	"sync"

	"github.com/Veraticus/regexlab/pkg/interfaces"
)

// Write records one call made against a RecordingPage.
type Write struct {
	Op       string
	Selector string
	Value    string
}

// RecordingPage is a thread-safe interfaces.PageWriter that remembers every write
type RecordingPage struct {
	mu     sync.Mutex
	writes []Write
	err    error
}

var _ interfaces.PageWriter = (*RecordingPage)(nil)

// NewRecordingPage creates a new recording page
func NewRecordingPage() *RecordingPage {
	return &RecordingPage{}
}

// SetError makes every subsequent write fail with err
func (p *RecordingPage) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// SetInnerHTML implements interfaces.PageWriter
func (p *RecordingPage) SetInnerHTML(selector, markup string) error {
	return p.record("html", selector, markup)
}

// SetInnerText implements interfaces.PageWriter
func (p *RecordingPage) SetInnerText(selector, text string) error {
	return p.record("text", selector, text)
}

// SetClassName implements interfaces.PageWriter
func (p *RecordingPage) SetClassName(selector, class string) error {
	return p.record("class", selector, class)
}

func (p *RecordingPage) record(op, selector, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.writes = append(p.writes, Write{Op: op, Selector: selector, Value: value})
	return nil
}

// Writes returns a copy of all recorded writes
func (p *RecordingPage) Writes() []Write {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]Write, len(p.writes))
	copy(result, p.writes)
	return result
}

// Last returns the most recent value written to selector by op
func (p *RecordingPage) Last(op, selector string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := len(p.writes) - 1; i >= 0; i-- {
		if w := p.writes[i]; w.Op == op && w.Selector == selector {
			return w.Value, true
		}
	}
	return "", false
}
