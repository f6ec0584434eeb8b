// Package assets embeds the images and stylesheet served under /assets/.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed images style.css
var files embed.FS

// Image paths as referenced from pages.
const (
	Logo    = "/assets/images/logo.svg"
	Welcome = "/assets/images/welcome.svg"
	Style   = "/assets/style.css"
)

// FS returns the embedded asset tree, rooted so that "images/logo.svg"
// resolves to the logo.
func FS() fs.FS { return files }
