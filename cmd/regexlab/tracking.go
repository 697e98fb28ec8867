package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/regexlab/pkg/interfaces"
	"github.com/Veraticus/regexlab/pkg/page"
)

// trackingPage forwards writes to a document and remembers which
// elements were touched, so text output can show them afterwards.
type trackingPage struct {
	doc      *page.Document
	touched  []string
	seen     map[string]bool
	classSet map[string]bool
}

var _ interfaces.PageWriter = (*trackingPage)(nil)

func newTrackingPage(doc *page.Document) *trackingPage {
	return &trackingPage{
		doc:      doc,
		seen:     make(map[string]bool),
		classSet: make(map[string]bool),
	}
}

func (t *trackingPage) touch(selector string) {
	if !t.seen[selector] {
		t.seen[selector] = true
		t.touched = append(t.touched, selector)
	}
}

func (t *trackingPage) SetInnerHTML(selector, markup string) error {
	if err := t.doc.SetInnerHTML(selector, markup); err != nil {
		return err
	}
	t.touch(selector)
	return nil
}

func (t *trackingPage) SetInnerText(selector, text string) error {
	if err := t.doc.SetInnerText(selector, text); err != nil {
		return err
	}
	t.touch(selector)
	return nil
}

func (t *trackingPage) SetClassName(selector, class string) error {
	if err := t.doc.SetClassName(selector, class); err != nil {
		return err
	}
	t.classSet[selector] = true
	t.touch(selector)
	return nil
}

// Summarize prints the final state of every touched element.
func (t *trackingPage) Summarize(w io.Writer) error {
	for _, selector := range t.touched {
		el, err := t.doc.QuerySelector(selector)
		if err != nil {
			return err
		}

		if t.classSet[selector] {
			fmt.Fprintf(w, "%s class=%q\n", selector, el.ClassName())
			continue
		}
		if items := el.Items(); len(items) > 0 {
			fmt.Fprintf(w, "%s:\n", selector)
			for _, item := range items {
				fmt.Fprintf(w, "  - %s\n", item)
			}
			continue
		}
		if selector == "#console" {
			// Already printed as it ran.
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", selector, el.InnerText())
	}
	return nil
}
