// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the static asset file system.
func StaticFS() fs.FS {
	return mustSub("static")
}

// TemplatesFS returns the page template file system.
func TemplatesFS() fs.FS {
	return mustSub("templates")
}

// mustSub panics on error, which can only happen if the embed directive and
// the directory names disagree.
func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic("web: " + err.Error())
	}
	return sub
}
