// Package webroot holds the application packaged into the executable. It is deployed
// when no external context directory is configured.
package webroot

import (
	"embed"
	"io/fs"
)

//go:embed ROOT
var content embed.FS

// Assets returns the packaged application rooted at its document root.
func Assets() fs.FS {
	sub, err := fs.Sub(content, "ROOT")
	if err != nil {
		panic(err)
	}
	return sub
}
