// Package assets embeds the stylesheet and script shipped with the panel and
// resolves their public URLs against a configured base path.
package assets

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed static/*.css static/*.js
var files embed.FS

// Dir is the directory, relative to the site root, that assets are emitted into.
const Dir = "assets"

// Names of the embedded assets.
const (
	Stylesheet = "style.css"
	Script     = "panel.js"
)

// FS returns the embedded assets rooted at their own directory, so that
// Stylesheet and Script are top-level entries.
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at compile time.
		panic(err)
	}
	return sub
}

// Names lists every embedded asset in a stable order.
func Names() []string {
	return []string{Stylesheet, Script}
}

// URL returns the reference a page should use for the named asset.
//
// An empty or "./" base yields a page-relative reference ("./assets/x");
// any other base is used as a prefix, with exactly one slash between the
// base and the asset directory.
func URL(base, name string) string {
	rel := Dir + "/" + name
	if base == "" || base == "./" {
		return "./" + rel
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + rel
}

// MountPrefix returns the router prefix under which a server must expose
// the page for the given base path. Relative bases and URLs mount at root.
func MountPrefix(base string) string {
	if !strings.HasPrefix(base, "/") {
		return ""
	}
	return strings.TrimSuffix(base, "/")
}
