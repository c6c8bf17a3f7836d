package panel

import (
	"fmt"
	"html/template"
	"io"

	"github.com/digital-allies/allies/internal/assets"
)

// RenderOptions controls how the document references its assets and
// whether the counter is driven by a server.
type RenderOptions struct {
	// BasePath prefixes asset URLs; see assets.URL.
	BasePath string
	// LiveURL, when set, is the page-relative WebSocket endpoint that owns
	// the counter. Empty means the counter runs in the browser.
	LiveURL string
}

// documentData holds the data passed to the HTML template.
type documentData struct {
	Title         string
	Description   template.HTML
	Features      []Feature
	Label         string
	Count         string
	StylesheetURL string
	ScriptURL     string
	LiveURL       string
}

var tmpl = template.Must(template.New("document").Parse(documentTemplate))

// Render writes the full HTML document. It does not change the counter.
func (p *Panel) Render(w io.Writer, opts RenderOptions) error {
	data := documentData{
		Title:         p.content.Title,
		Description:   p.content.Description,
		Features:      p.Features(),
		Label:         p.Label(),
		Count:         p.count.String(),
		StylesheetURL: assets.URL(opts.BasePath, assets.Stylesheet),
		ScriptURL:     assets.URL(opts.BasePath, assets.Script),
		LiveURL:       opts.LiveURL,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering panel: %w", err)
	}
	return nil
}

// RenderButton writes only the counter button, the one subtree that changes
// after Activate.
func (p *Panel) RenderButton(w io.Writer) error {
	data := documentData{
		Label: p.Label(),
		Count: p.count.String(),
	}
	if err := tmpl.ExecuteTemplate(w, "button", data); err != nil {
		return fmt.Errorf("rendering button: %w", err)
	}
	return nil
}
