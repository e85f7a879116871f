// Package templates embeds the HTML pages served by the router.
package templates

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page. Pages are addressed by file name,
// e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"price": formatPrice,
	}).ParseFS(files, "*.html")
}

// formatPrice renders a price with two decimals.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
