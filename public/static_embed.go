// Package public exposes the embedded static asset tree: stylesheet,
// client script, product imagery and the products.json catalog document.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the asset tree rooted below static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
