package handler

import (
	"net/http"

	"github.com/BuzzLyutic/tasklist-server/pkg/respond"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS adds permissive cross-origin headers to every response and answers
// OPTIONS on any path with an empty 200.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			respond.Empty(w, r, http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
