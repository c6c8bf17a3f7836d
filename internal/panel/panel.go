// Package panel implements the Display Panel: a static landing layout with a
// single click counter.
//
// A Panel is owned by exactly one caller (a static build, or one live
// connection) and is not safe for concurrent use.
package panel

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

// Content is the static text shown above the tiles.
type Content struct {
	Title       string
	Description template.HTML
}

// NewContent converts a Markdown description to HTML. Raw HTML in the
// source is escaped.
func NewContent(title, description string) (Content, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(description), &buf); err != nil {
		return Content{}, fmt.Errorf("rendering description: %w", err)
	}
	return Content{
		Title:       title,
		Description: template.HTML(buf.String()),
	}, nil
}

// Panel holds one Counter and the content it is displayed with.
type Panel struct {
	content Content
	count   Counter
}

// New returns a panel whose counter starts at zero.
func New(content Content) *Panel {
	return &Panel{content: content}
}

// Activate records one click and returns the new count.
func (p *Panel) Activate() Counter {
	p.count = p.count.Increment()
	return p.count
}

// Count returns the current count.
func (p *Panel) Count() Counter { return p.count }

// Label is the button text for the current count.
func (p *Panel) Label() string {
	return "Count is " + p.count.String()
}

// Features returns the static tiles in display order.
func (p *Panel) Features() []Feature { return Features() }
