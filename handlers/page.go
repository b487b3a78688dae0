// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io/fs"
	"net/http"
)

type PageHandler struct {
	index  []byte
	static fs.FS
}

func NewPageHandler(index []byte, static fs.FS) *PageHandler {
	return &PageHandler{index: index, static: static}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.index)
}

// Static serves page assets under /static/
func (h *PageHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(h.static))
}
