// Package site serves the embedded signup web UI.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants.
var (
	ErrServe = errors.New("site serve failed")
)

// indexPath is where the root redirect sends browsers.
const indexPath = "/static/index.html"

// Register attaches the embedded web UI routes to mux.
// The root path issues a temporary redirect to the static index so the
// API surface stays under its own paths.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// "/" matches every path no other route claims; only redirect the
		// root itself.
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
	})
}
