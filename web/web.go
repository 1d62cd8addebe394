// Package web carries the embedded dashboard assets so the API binary can
// serve the front end without a separate deployment.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the dashboard asset tree rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
