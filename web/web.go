// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the sign-up page and its assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// Index returns the sign-up page
func Index() []byte {
	page, err := files.ReadFile("index.html")
	if err != nil {
		// Embedded at build time, cannot be missing
		panic(err)
	}
	return page
}

// Static returns the asset tree served under /static/
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
