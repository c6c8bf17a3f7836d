package panel

import "html/template"

// Feature is one static tile on the panel.
type Feature struct {
	Label string
	Icon  template.HTML
}

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="w-12 h-12 mx-auto text-indigo-600 mb-2 block" aria-hidden="true">`

var (
	iconHeart = template.HTML(svgOpen +
		`<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>` +
		`</svg>`)
	iconUsers = template.HTML(svgOpen +
		`<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/>` +
		`<circle cx="9" cy="7" r="4"/>` +
		`<path d="M22 21v-2a4 4 0 0 0-3-3.87"/>` +
		`<path d="M16 3.13a4 4 0 0 1 0 7.75"/>` +
		`</svg>`)
	iconShield = template.HTML(svgOpen +
		`<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>` +
		`</svg>`)
)

// features is fixed for the lifetime of the process; order is display order.
var features = [...]Feature{
	{Label: "Care", Icon: iconHeart},
	{Label: "Community", Icon: iconUsers},
	{Label: "Security", Icon: iconShield},
}

// Features returns the panel's tiles in display order. The returned slice
// is a copy.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features[:])
	return out
}
