// Package templates embeds the HTML templates and stylesheet of the gallery.
package templates

import "embed"

//go:embed *.html style.css
var FS embed.FS
