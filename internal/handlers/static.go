// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// indexFile is the single-page-app entry document.
const indexFile = "index.html"

// Static serves files from dir and answers every other path with the
// entry document, so client-side routes survive a reload. When dir has no
// index.html the entry document comes from fallback.
type Static struct {
	dir      string
	fallback fs.FS
}

// NewStatic creates the static handler. fallback must contain index.html
// at its root.
func NewStatic(dir string, fallback fs.FS) *Static {
	return &Static{dir: dir, fallback: fallback}
}

// ServeHTTP implements http.Handler.
func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	name := path.Clean("/" + r.URL.Path)[1:]
	if name != "" && s.dir != "" {
		if s.serveFile(w, r, filepath.Join(s.dir, filepath.FromSlash(name))) {
			return
		}
	}

	if s.dir != "" && s.serveFile(w, r, filepath.Join(s.dir, indexFile)) {
		return
	}
	s.serveFallback(w, r)
}

// serveFile serves a regular file and reports whether it did.
func (s *Static) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

func (s *Static) serveFallback(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(s.fallback, indexFile)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
